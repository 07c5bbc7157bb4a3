// Package xdg provides path management following XDG Base Directory conventions.
// All user-level paths aurcheck touches on disk are defined here.
package xdg

import (
	"os"
	"path/filepath"
)

const (
	appName        = "aurcheck"
	configFileName = "config.toml"
)

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".config")
	}

	return filepath.Join(home, ".config")
}

// ConfigDir returns the aurcheck directory under ConfigHome.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}

// GlobalConfigFile returns the path of the user configuration file.
func GlobalConfigFile() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// PathResolver resolves the user-level paths.
// Use ResolverFor when paths should be relative to a specific home directory.
type PathResolver interface {
	GlobalConfigFile() string
	ConfigDir() string
}

// DefaultResolver returns a PathResolver using real XDG paths.
func DefaultResolver() PathResolver {
	return defaultResolver{}
}

type defaultResolver struct{}

func (defaultResolver) GlobalConfigFile() string { return GlobalConfigFile() }
func (defaultResolver) ConfigDir() string        { return ConfigDir() }

// ResolverFor returns a PathResolver rooted at homeDir. XDG env vars are
// ignored so the result only depends on homeDir.
func ResolverFor(homeDir string) PathResolver {
	return homeResolver{homeDir: homeDir}
}

type homeResolver struct {
	homeDir string
}

func (r homeResolver) ConfigDir() string {
	return filepath.Join(r.homeDir, ".config", appName)
}

func (r homeResolver) GlobalConfigFile() string {
	return filepath.Join(r.ConfigDir(), configFileName)
}
