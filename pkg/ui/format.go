package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text output from the writer it renders to
	FormatAuto Format = iota
	// FormatTerminal renders colored badges and a summary table
	FormatTerminal
	// FormatText renders one plain line per file and a summary line
	FormatText
	// FormatJSON renders a single result document per run
	FormatJSON
)

// FormatNames lists the values accepted by --format, in help order.
var FormatNames = []string{"auto", "term", "text", "json"}

// String returns the name used on the command line
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format value. Matching is case-insensitive and
// accepts "terminal" and "plain" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("valid", FormatNames)
	}
}

// Resolve turns FormatAuto into a concrete format for w. Files are checked
// with DetectFormat; any other writer (a buffer, a pipe wrapper) gets
// terminal output. Concrete formats are returned unchanged.
func (f Format) Resolve(w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

// DetectFormat determines the output format for a file from the environment
// and terminal capabilities
func DetectFormat(output *os.File) Format {
	// NO_COLOR always wins
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected: plain lines are easier to grep
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// A terminal without colors gets the same plain lines
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
