// Package testutil provides helpers shared by organizer tests: building file
// trees on disk or in memory and isolating the config and state directories.
package testutil
