package markdown_test

import (
	"testing"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/ui/markdown"
	"github.com/stretchr/testify/assert"
)

func TestRules(t *testing.T) {
	rules := classifier.NewRuleset([]classifier.Category{
		{Name: "Imagens", Extensions: []string{"jpg", "png"}},
		{Name: "Codigos", Extensions: []string{"sh"}},
		{Name: "Aplicativos", Extensions: []string{"sh", "exe"}},
	}, "")

	md := markdown.Rules(rules)

	assert.Contains(t, md, "| 1 | Imagens | `jpg` `png` |")
	assert.Contains(t, md, "| 3 | Aplicativos | `sh` `exe` |")
	assert.Contains(t, md, "go to **Outros**")
	assert.Contains(t, md, "## Duplicate extensions")
	assert.Contains(t, md, "- `sh`: Codigos, Aplicativos")
}

func TestRules_Empty(t *testing.T) {
	md := markdown.Rules(classifier.Ruleset{Fallback: "Misc"})

	assert.Contains(t, md, "_No categories configured._")
	assert.Contains(t, md, "**Misc**")
	assert.NotContains(t, md, "Duplicate")
}

func TestGlamourRenderer(t *testing.T) {
	r := &markdown.GlamourRenderer{Style: "notty", Width: 80}
	out := r.Render("# Title\n\nSome *text*.\n")

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}
