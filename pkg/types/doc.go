// Package types defines the interfaces shared across organizer packages.
// The filesystem abstraction lives here so the relocator, the runner and the
// config writer can be exercised against either the OS or an in-memory FS.
package types
