// Package filesystem provides filesystem implementations for organizer.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem, whose Rename refuses to replace an existing destination, and an
// afero-backed filesystem used by in-memory tests.
package filesystem
