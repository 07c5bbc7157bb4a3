package config

import (
	"time"

	"github.com/smykla-skalski/aurcheck/pkg/config"
)

const (
	// DefaultBaseURL is the public AUR web root.
	DefaultBaseURL = "https://aur.archlinux.org"

	// DefaultPackage is the AUR package tracked by default.
	DefaultPackage = "sealantern"

	// DefaultUserAgent identifies the application to the AUR.
	DefaultUserAgent = "SeaLantern"

	// DefaultTimeout bounds a single AUR RPC request.
	DefaultTimeout = 30 * time.Second

	// DefaultOSReleasePath is the standard OS descriptor location.
	DefaultOSReleasePath = "/etc/os-release"

	// DefaultFallbackHelper is suggested when no helper is installed.
	DefaultFallbackHelper = "yay"

	// DefaultProbeTimeout bounds each helper lookup.
	DefaultProbeTimeout = 2 * time.Second

	// DefaultLogLevel is the default log level name.
	DefaultLogLevel = "info"
)

// DefaultHelpers returns the AUR helpers in probe priority order.
func DefaultHelpers() []string {
	return []string{"yay", "paru", "pamac", "trizen", "pacaur"}
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	return &config.Config{
		AUR: config.AURConfig{
			BaseURL:   DefaultBaseURL,
			Package:   DefaultPackage,
			UserAgent: DefaultUserAgent,
			Timeout:   config.Duration(DefaultTimeout),
		},
		Platform: config.PlatformConfig{
			OSReleasePath:  DefaultOSReleasePath,
			Helpers:        DefaultHelpers(),
			FallbackHelper: DefaultFallbackHelper,
			ProbeTimeout:   config.Duration(DefaultProbeTimeout),
		},
		Log: config.LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// defaultsToMap returns the defaults in the nested map form koanf loads.
func defaultsToMap() map[string]any {
	return map[string]any{
		"aur": map[string]any{
			"base_url":   DefaultBaseURL,
			"package":    DefaultPackage,
			"user_agent": DefaultUserAgent,
			"timeout":    DefaultTimeout.String(),
		},
		"platform": map[string]any{
			"os_release_path": DefaultOSReleasePath,
			"helpers":         DefaultHelpers(),
			"fallback_helper": DefaultFallbackHelper,
			"probe_timeout":   DefaultProbeTimeout.String(),
		},
		"log": map[string]any{
			"level": DefaultLogLevel,
		},
	}
}
