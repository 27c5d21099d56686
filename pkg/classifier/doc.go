// Package classifier maps file names to category labels.
//
// A Ruleset is an ordered list of categories, each owning a set of extension
// tokens. Classify takes the extension of the final path component,
// lowercases it, and returns the first category in ruleset order that lists
// it. Names without an extension, and extensions no category claims, get the
// ruleset's fallback label.
//
// Rule tokens are compared lowercased but otherwise verbatim: a token written
// as ".jpg" or " jpg" never matches anything.
//
// Classification does no I/O and cannot fail.
package classifier
