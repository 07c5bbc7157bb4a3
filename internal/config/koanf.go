// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/aurcheck/internal/xdg"
	"github.com/smykla-skalski/aurcheck/pkg/config"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested config file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "AURCHECK_"
)

// Loader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (AURCHECK_*)
// 3. Explicit config file (--config)
// 4. Global Config ($XDG_CONFIG_HOME/aurcheck/config.toml)
// 5. Defaults
type Loader struct {
	k        *koanf.Koanf
	paths    xdg.PathResolver
	tomlOpts koanf.UnmarshalConf
}

// NewLoader creates a new Loader using the XDG config location.
func NewLoader() *Loader {
	return newLoader(xdg.DefaultResolver())
}

// NewLoaderWithHome creates a new Loader with a custom home directory (for testing).
func NewLoaderWithHome(homeDir string) *Loader {
	return newLoader(xdg.ResolverFor(homeDir))
}

func newLoader(paths xdg.PathResolver) *Loader {
	return &Loader{
		k:     koanf.New("."),
		paths: paths,
		tomlOpts: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}
}

// Load loads and validates configuration. An empty path skips the explicit
// config file; a non-empty path must exist.
func (l *Loader) Load(path string, flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(path, flags)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
func (l *Loader) LoadWithoutValidation(path string, flags map[string]any) (*config.Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	if path != "" {
		if err := l.loadTOMLFile(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
			}

			return nil, errors.Wrap(err, "failed to load config file")
		}
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flagsToConfig(flags), "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config

	conf := l.tomlOpts
	conf.DecoderConfig = decoderConfig(&cfg)

	if err := l.k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *Loader) GlobalConfigPath() string {
	return l.paths.GlobalConfigFile()
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *Loader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Reject world-writable files.
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform maps environment variable names to config paths.
// The first underscore separates the section from the key:
// AURCHECK_AUR_BASE_URL → aur.base_url
func envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	section, name, ok := strings.Cut(key, "_")
	if !ok {
		return key, value
	}

	path := section + "." + name

	if path == "platform.helpers" {
		return path, splitList(value)
	}

	return path, value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// flagsToConfig converts CLI flags to a configuration map.
func flagsToConfig(flags map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range flags {
		strVal, ok := value.(string)
		if !ok || strVal == "" {
			continue
		}

		switch key {
		case "log-level":
			ensureMapKey(result, "log")["level"] = strVal
		case "package":
			ensureMapKey(result, "aur")["package"] = strVal
		case "base-url":
			ensureMapKey(result, "aur")["base_url"] = strVal
		case "os-release":
			ensureMapKey(result, "platform")["os_release_path"] = strVal
		}
	}

	return result
}

// ensureMapKey ensures a key exists as a map and returns it.
func ensureMapKey(cfg map[string]any, key string) map[string]any {
	if _, ok := cfg[key]; !ok {
		cfg[key] = make(map[string]any)
	}

	m, _ := cfg[key].(map[string]any)

	return m
}
