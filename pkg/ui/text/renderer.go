// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/organize"
	"github.com/arthur-debert/organizer/pkg/relocator"
	"github.com/arthur-debert/organizer/pkg/ui/markdown"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderOutcome writes one line describing what happened to a file
func (r *Renderer) RenderOutcome(out relocator.Outcome) error {
	_, err := fmt.Fprintln(r.output, OutcomeLine(out))
	return err
}

// RenderResult writes the run summary
func (r *Renderer) RenderResult(result *organize.Result) error {
	if result.DryRun {
		if _, err := fmt.Fprintln(r.output, "Dry run: no files were moved."); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.output, SummaryLine(result.Summary))
	return err
}

// RenderRules writes the ruleset as markdown source
func (r *Renderer) RenderRules(rules classifier.Ruleset) error {
	_, err := fmt.Fprint(r.output, markdown.Rules(rules))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// OutcomeLine formats an outcome as "<kind> <name> -> <category>/<final name>"
// or "<kind> <name> (<reason>)".
func OutcomeLine(out relocator.Outcome) string {
	name := filepath.Base(out.Source)
	switch out.Kind {
	case relocator.Moved, relocator.Renamed:
		return fmt.Sprintf("%-8s %s -> %s", out.Kind, name, Destination(out))
	default:
		return fmt.Sprintf("%-8s %s (%s)", out.Kind, name, out.Message())
	}
}

// Destination returns the category folder and final name of a moved file.
func Destination(out relocator.Outcome) string {
	return filepath.Join(out.Category, filepath.Base(out.Path))
}

// SummaryLine formats the run totals on a single line, followed by the files
// relocated and the collisions resolved.
func SummaryLine(s organize.Summary) string {
	return fmt.Sprintf("%d moved, %d renamed, %d ignored, %d failed in %s (%d relocated, %d collisions resolved)",
		s.Moved, s.Renamed, s.Ignored, s.Failed, s.Duration.Round(time.Millisecond),
		s.Relocated(), s.Collisions())
}
