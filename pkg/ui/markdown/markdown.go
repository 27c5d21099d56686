// Package markdown renders the ruleset as a markdown document and displays
// markdown in the terminal with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/charmbracelet/glamour"
)

// Rules returns the ruleset as a markdown table, followed by the fallback
// folder and any extensions claimed by more than one category.
func Rules(rules classifier.Ruleset) string {
	var b strings.Builder

	b.WriteString("# Categories\n\n")
	if len(rules.Categories) == 0 {
		b.WriteString("_No categories configured._\n")
	} else {
		b.WriteString("| # | Category | Extensions |\n")
		b.WriteString("|---|----------|------------|\n")
		for i, cat := range rules.Categories {
			exts := make([]string, len(cat.Extensions))
			for j, ext := range cat.Extensions {
				exts[j] = "`" + ext + "`"
			}
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, cat.Name, strings.Join(exts, " "))
		}
	}

	fmt.Fprintf(&b, "\nFiles without an extension or a matching rule go to **%s**.\n", rules.FallbackLabel())

	if dups := rules.Duplicates(); len(dups) > 0 {
		b.WriteString("\n## Duplicate extensions\n\n")
		b.WriteString("The first category listed wins.\n\n")
		for _, dup := range dups {
			fmt.Fprintf(&b, "- `%s`: %s\n", dup.Extension, strings.Join(dup.Categories, ", "))
		}
	}

	return b.String()
}

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Terminal width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. On any glamour error
// the content is returned unchanged.
func (r *GlamourRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
