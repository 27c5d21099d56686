// Package organizer implements the organizer command line: the root command
// that sorts a directory plus the config, rules, version and completion
// subcommands.
package organizer
