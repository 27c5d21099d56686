package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "ORGANIZER_"

// Load builds the effective configuration from the embedded defaults, the
// user's config file, the environment and the given overrides. Keys in
// overrides use the config file names (e.g. "ignore_hidden").
func Load(p paths.Paths, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default config")
	}

	// 2. User config file, TOML first
	source := ""
	if path, parser := userConfigFile(p); path != "" {
		user := koanf.New(".")
		if err := user.Load(file.Provider(path), parser); err != nil {
			if stderrors.Is(err, fs.ErrPermission) {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config from %s", path)
			}
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config from %s", path).
				WithDetail("path", path)
		}
		// A user file with a legacy [rules] table replaces the default categories
		// instead of merging with them.
		if user.Exists("rules") && !user.Exists("categories") {
			k.Delete("categories")
		}
		if err := k.Merge(user); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge config from %s", path)
		}
		source = path
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("source", source).
		Int("categories", len(cfg.Ruleset().Categories)).
		Str("fallback", cfg.FallbackCategory).
		Bool("ignore_hidden", cfg.IgnoreHidden).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := loadDefaults()
	if err != nil {
		// The embedded file is part of the binary; failing to parse it is a bug.
		panic(err)
	}
	return cfg
}

func loadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default config")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to unmarshal default config")
	}
	return &cfg, nil
}

// userConfigFile returns the first existing user config file and its parser.
func userConfigFile(p paths.Paths) (string, koanf.Parser) {
	if _, err := os.Stat(p.ConfigFile()); err == nil {
		return p.ConfigFile(), toml.Parser()
	}
	if _, err := os.Stat(p.ConfigFileYAML()); err == nil {
		return p.ConfigFileYAML(), yaml.Parser()
	}
	return "", nil
}

// UserFile returns the user config file that Load reads, or "" when there is
// none.
func UserFile(p paths.Paths) string {
	path, _ := userConfigFile(p)
	return path
}
