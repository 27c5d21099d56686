// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/organize"
	"github.com/arthur-debert/organizer/pkg/relocator"
	"github.com/arthur-debert/organizer/pkg/ui/markdown"
	"github.com/arthur-debert/organizer/pkg/ui/styles"
	"github.com/arthur-debert/organizer/pkg/ui/text"
	"github.com/pterm/pterm"
)

// Renderer provides styled terminal output
type Renderer struct {
	output   io.Writer
	markdown *markdown.GlamourRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:   w,
		markdown: markdown.NewGlamourRenderer(),
	}, nil
}

// RenderOutcome writes one styled line for a file
func (r *Renderer) RenderOutcome(out relocator.Outcome) error {
	badge := styles.GetStyle(kindStyle(out.Kind)).Render(fmt.Sprintf("%-8s", out.Kind))
	name := filepath.Base(out.Source)

	var line string
	switch out.Kind {
	case relocator.Moved, relocator.Renamed:
		line = fmt.Sprintf("%s %s -> %s", badge, name,
			styles.GetStyle("Category").Render(text.Destination(out)))
	default:
		line = fmt.Sprintf("%s %s %s", badge, name,
			styles.GetStyle("Muted").Render("("+out.Message()+")"))
	}

	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderResult writes the run summary as a table
func (r *Renderer) RenderResult(result *organize.Result) error {
	if _, err := fmt.Fprintln(r.output); err != nil {
		return err
	}
	if result.DryRun {
		if _, err := fmt.Fprintln(r.output, styles.GetStyle("DryRunBanner").Render("Dry run: no files were moved.")); err != nil {
			return err
		}
	}

	s := result.Summary
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(pterm.TableData{
			{"Relocated", "Moved", "Renamed", "Collisions", "Ignored", "Failed", "Skipped", "Time"},
			{
				strconv.Itoa(s.Relocated()),
				strconv.Itoa(s.Moved),
				strconv.Itoa(s.Renamed),
				strconv.Itoa(s.Collisions()),
				strconv.Itoa(s.Ignored),
				strconv.Itoa(s.Failed),
				strconv.Itoa(s.Skipped),
				s.Duration.Round(time.Millisecond).String(),
			},
		}).
		Srender()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(r.output, styles.GetStyle("Header").Render("Summary")); err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderRules renders the ruleset markdown through glamour
func (r *Renderer) RenderRules(rules classifier.Ruleset) error {
	_, err := fmt.Fprint(r.output, r.markdown.Render(markdown.Rules(rules)))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", styles.GetStyle("Error").Render("Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}

func kindStyle(kind relocator.Kind) string {
	switch kind {
	case relocator.Moved:
		return "Moved"
	case relocator.Renamed:
		return "Renamed"
	case relocator.Ignored:
		return "Ignored"
	default:
		return "Failed"
	}
}
