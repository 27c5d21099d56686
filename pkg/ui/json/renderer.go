// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/organize"
	"github.com/arthur-debert/organizer/pkg/relocator"
)

// Renderer provides JSON output for machine consumption. Outcomes are
// emitted once, as part of the result document.
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

type outcomeView struct {
	relocator.Outcome
	Error string           `json:"error,omitempty"`
	Code  errors.ErrorCode `json:"code,omitempty"`
}

// summaryView adds the derived totals to the raw counts.
type summaryView struct {
	organize.Summary
	Relocated  int `json:"relocated"`
	Collisions int `json:"collisions"`
	Total      int `json:"total"`
}

type resultView struct {
	InputDir  string        `json:"input_dir"`
	OutputDir string        `json:"output_dir"`
	DryRun    bool          `json:"dry_run"`
	Outcomes  []outcomeView `json:"outcomes"`
	Summary   summaryView   `json:"summary"`
}

type errorView struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type categoryView struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

type duplicateView struct {
	Extension  string   `json:"extension"`
	Categories []string `json:"categories"`
}

type rulesView struct {
	Categories []categoryView  `json:"categories"`
	Fallback   string          `json:"fallback"`
	Duplicates []duplicateView `json:"duplicates"`
}

// RenderOutcome does nothing; RenderResult carries every outcome.
func (r *Renderer) RenderOutcome(relocator.Outcome) error {
	return nil
}

// RenderResult renders the run result as JSON
func (r *Renderer) RenderResult(result *organize.Result) error {
	view := resultView{
		InputDir:  result.InputDir,
		OutputDir: result.OutputDir,
		DryRun:    result.DryRun,
		Outcomes:  make([]outcomeView, len(result.Outcomes)),
		Summary: summaryView{
			Summary:    result.Summary,
			Relocated:  result.Summary.Relocated(),
			Collisions: result.Summary.Collisions(),
			Total:      result.Summary.Total(),
		},
	}
	for i, out := range result.Outcomes {
		view.Outcomes[i] = outcomeView{Outcome: out}
		if out.Err != nil {
			view.Outcomes[i].Error = out.Err.Error()
			view.Outcomes[i].Code = errors.GetErrorCode(out.Err)
		}
	}
	return r.encoder.Encode(view)
}

// RenderRules renders the ruleset as JSON
func (r *Renderer) RenderRules(rules classifier.Ruleset) error {
	view := rulesView{
		Categories: make([]categoryView, len(rules.Categories)),
		Fallback:   rules.FallbackLabel(),
		Duplicates: []duplicateView{},
	}
	for i, cat := range rules.Categories {
		view.Categories[i] = categoryView{Name: cat.Name, Extensions: cat.Extensions}
	}
	for _, dup := range rules.Duplicates() {
		view.Duplicates = append(view.Duplicates, duplicateView{Extension: dup.Extension, Categories: dup.Categories})
	}
	return r.encoder.Encode(view)
}

// RenderError renders an error as JSON with its code and details
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorView{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
