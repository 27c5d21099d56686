// Package config handles configuration management for organizer.
// It loads the category ruleset and run options from the embedded defaults,
// the user's TOML or YAML file in the XDG config directory, ORGANIZER_*
// environment variables and command-line overrides, in that order.
package config
