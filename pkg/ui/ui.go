// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/organize"
	"github.com/arthur-debert/organizer/pkg/relocator"
	"github.com/arthur-debert/organizer/pkg/ui/json"
	"github.com/arthur-debert/organizer/pkg/ui/terminal"
	"github.com/arthur-debert/organizer/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderOutcome reports a single file as soon as it is processed
	RenderOutcome(out relocator.Outcome) error

	// RenderResult renders the end-of-run summary
	RenderResult(result *organize.Result) error

	// RenderRules renders the effective ruleset
	RenderRules(rules classifier.Ruleset) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
