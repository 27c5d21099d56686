// Package organize runs the classifier and relocator over every file in a
// directory and aggregates the outcomes.
package organize
