package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/logging"
)

var log = logging.GetLogger("config")

// Config is the effective organizer configuration.
type Config struct {
	FallbackCategory string              `koanf:"fallback_category" toml:"fallback_category" yaml:"fallback_category"`
	IgnoreHidden     bool                `koanf:"ignore_hidden" toml:"ignore_hidden" yaml:"ignore_hidden"`
	SkipNames        []string            `koanf:"skip_names" toml:"skip_names" yaml:"skip_names"`
	Categories       []Category          `koanf:"categories" toml:"categories" yaml:"categories"`
	Rules            map[string][]string `koanf:"rules" toml:"rules,omitempty" yaml:"rules,omitempty"`

	// Source is the user file that was loaded, empty when only defaults apply.
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// Category maps a destination folder name to its extensions.
type Category struct {
	Name       string   `koanf:"name" toml:"name" yaml:"name"`
	Extensions []string `koanf:"extensions" toml:"extensions" yaml:"extensions"`
}

// Ruleset converts the configuration into a classifier ruleset. A legacy
// [rules] table replaces the categories list; its labels are sorted.
func (c *Config) Ruleset() classifier.Ruleset {
	if len(c.Rules) > 0 {
		return classifier.FromMap(c.Rules, c.FallbackCategory)
	}

	categories := make([]classifier.Category, len(c.Categories))
	for i, cat := range c.Categories {
		categories[i] = classifier.Category{Name: cat.Name, Extensions: cat.Extensions}
	}
	return classifier.NewRuleset(categories, c.FallbackCategory)
}

// Validate rejects configurations whose labels cannot be used as folder names.
// Extensions claimed by several categories are only logged.
func (c *Config) Validate() error {
	if err := validateLabel(c.FallbackCategory); err != nil {
		return err.WithDetail("key", "fallback_category")
	}

	seen := make(map[string]bool)
	for i, label := range c.Ruleset().Labels() {
		if err := validateLabel(label); err != nil {
			return err.WithDetail("category", i)
		}
		if seen[label] {
			return errors.Newf(errors.ErrConfigValid, "category %q is defined more than once", label).
				WithDetail("category", i)
		}
		seen[label] = true
	}

	for _, dup := range c.Ruleset().Duplicates() {
		log.Warn().
			Str("extension", dup.Extension).
			Strs("categories", dup.Categories).
			Str("winner", dup.Categories[0]).
			Msg("Extension claimed by more than one category")
	}

	return nil
}

func validateLabel(label string) *errors.OrganizerError {
	switch {
	case label == "":
		return errors.New(errors.ErrConfigValid, "category name is empty")
	case label == "." || label == "..":
		return errors.Newf(errors.ErrConfigValid, "category name %q is not a folder name", label)
	case strings.ContainsRune(label, '/') || strings.ContainsRune(label, filepath.Separator):
		return errors.Newf(errors.ErrConfigValid, "category name %q contains a path separator", label)
	}
	return nil
}
