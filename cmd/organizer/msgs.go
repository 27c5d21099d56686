package organizer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sort files into category folders by extension"
	MsgConfigShort     = "Open the configuration file in your editor"
	MsgConfigPathShort = "Print the configuration file location"
	MsgConfigInitShort = "Write the default configuration file"
	MsgConfigShowShort = "Print the effective configuration as TOML"
	MsgRulesShort      = "Show the category rules in effect"
	MsgRulesLong       = "Rules lists every category with its extensions in the order they are matched, the fallback folder, and extensions claimed by more than one category."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flags
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput       = "Destination root for category folders (default: INPUT_DIR)"
	MsgFlagIgnoreHidden = "Leave files whose name starts with a dot in place"
	MsgFlagDryRun       = "Show what would be moved without changing anything"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagForce        = "Replace an existing configuration file"
	MsgFlagDefaults     = "Print the built-in default configuration file"

	// Status messages
	MsgOrganizing     = "Organizing %s -> %s"
	MsgConfigCreated  = "Created configuration file %s"
	MsgConfigWritten  = "Wrote default configuration to %s"
	MsgOpeningEditor  = "Opening %s"
	MsgConfigFallback = "Warning: failed to load configuration: %v. Using defaults."
	MsgConfigStillBad = "Warning: the configuration has problems and will be ignored: %v\n"
	MsgVersionFormat  = "organizer version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoEditor = "no editor found; set $VISUAL or $EDITOR"
)

// Multi-line messages loaded from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
