// Package logging wires zerolog for organizer.
//
// SetupLogger is called once from the root command with the -v count. Every
// other package asks for a component logger with GetLogger and never touches
// the global logger directly.
package logging
