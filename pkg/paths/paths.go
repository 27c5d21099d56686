package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/organizer/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for organizer
	EnvConfigDir = "ORGANIZER_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for organizer
	EnvStateDir = "ORGANIZER_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG roots
	AppDirName = "organizer"

	// ConfigFileName is the name of the TOML configuration file
	ConfigFileName = "config.toml"

	// ConfigFileNameYAML is the alternative YAML configuration file
	ConfigFileNameYAML = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "organizer.log"
)

// Paths provides the locations organizer reads from and writes to
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	ConfigFileYAML() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the organizer directories, honouring the ORGANIZER_* overrides
// before the XDG defaults.
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the configuration directory
func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the TOML configuration file path
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// ConfigFileYAML returns the YAML configuration file path
func (p *paths) ConfigFileYAML() string {
	return filepath.Join(p.configDir, ConfigFileNameYAML)
}

// StateDir returns the state directory
func (p *paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// NormalizePath expands a leading ~ and makes path absolute.
func NormalizePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
