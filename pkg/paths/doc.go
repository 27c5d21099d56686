// Package paths provides centralized path handling for organizer.
// It resolves the configuration and state locations following the XDG Base
// Directory specification and normalizes user-supplied directories.
package paths
