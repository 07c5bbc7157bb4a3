package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/aurcheck/internal/xdg"
	"github.com/smykla-skalski/aurcheck/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when writing over an existing file without force.
var ErrConfigExists = errors.New("configuration file already exists")

// Writer handles writing configuration to TOML files.
type Writer struct {
	paths xdg.PathResolver
}

// NewWriter creates a new Writer using the XDG config location.
func NewWriter() *Writer {
	return &Writer{paths: xdg.DefaultResolver()}
}

// NewWriterWithHome creates a new Writer with a custom home directory (for testing).
func NewWriterWithHome(homeDir string) *Writer {
	return &Writer{paths: xdg.ResolverFor(homeDir)}
}

// GlobalConfigPath returns the path to the global configuration file.
func (w *Writer) GlobalConfigPath() string {
	return w.paths.GlobalConfigFile()
}

// WriteFile writes the configuration to path. An existing file is only
// replaced when force is set.
func (*Writer) WriteFile(path string, cfg *config.Config, force bool) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Wrapf(ErrConfigExists, "%s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	var buf bytes.Buffer

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config to TOML")
	}

	if err := os.WriteFile(path, buf.Bytes(), ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
