// Package config provides configuration schema types for aurcheck.
package config

// Config represents the root configuration for aurcheck.
type Config struct {
	// AUR configures the AUR RPC endpoint and the tracked package.
	AUR AURConfig `json:"aur" koanf:"aur" toml:"aur"`

	// Platform configures host capability probing.
	Platform PlatformConfig `json:"platform" koanf:"platform" toml:"platform"`

	// Log configures diagnostic logging.
	Log LogConfig `json:"log" koanf:"log" toml:"log"`
}

// AURConfig configures the AUR query client.
type AURConfig struct {
	// BaseURL is the AUR web root. The RPC path is appended to it.
	// Default: "https://aur.archlinux.org"
	BaseURL string `json:"base_url" koanf:"base_url" toml:"base_url"`

	// Package is the AUR package name to look up.
	// Default: "sealantern"
	Package string `json:"package" koanf:"package" toml:"package"`

	// UserAgent is sent with every request to identify the application.
	// Default: "SeaLantern"
	UserAgent string `json:"user_agent" koanf:"user_agent" toml:"user_agent"`

	// Timeout bounds a single RPC request.
	// Default: "30s"
	Timeout Duration `json:"timeout" koanf:"timeout" toml:"timeout"`
}

// PlatformConfig configures the platform capability prober.
type PlatformConfig struct {
	// OSReleasePath is the OS descriptor file inspected for the distribution ID.
	// Default: "/etc/os-release"
	OSReleasePath string `json:"os_release_path" koanf:"os_release_path" toml:"os_release_path"`

	// Helpers lists AUR helper binaries in probe priority order.
	// Default: ["yay", "paru", "pamac", "trizen", "pacaur"]
	Helpers []string `json:"helpers" koanf:"helpers" toml:"helpers"`

	// FallbackHelper is suggested when none of Helpers is installed.
	// Default: "yay"
	FallbackHelper string `json:"fallback_helper" koanf:"fallback_helper" toml:"fallback_helper"`

	// ProbeTimeout bounds each helper lookup.
	// Default: "2s"
	ProbeTimeout Duration `json:"probe_timeout" koanf:"probe_timeout" toml:"probe_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of "debug", "info" or "error".
	// Default: "info"
	Level string `json:"level" koanf:"level" toml:"level"`
}
