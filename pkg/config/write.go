package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/organizer/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrConfigWrite, "config file already exists at %s", path).
				WithDetail("path", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write config to %s", path)
	}

	log.Info().Str("path", path).Msg("Wrote default configuration")
	return nil
}

// EnsureFile creates the config file with defaults when it does not exist.
// It reports whether a file was written.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path)
	}
	if err := WriteDefault(path, false); err != nil {
		return false, err
	}
	return true, nil
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
