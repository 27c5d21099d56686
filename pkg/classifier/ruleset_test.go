package classifier_test

import (
	"testing"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	rules := classifier.FromMap(map[string][]string{
		"Videos":  {"mp4"},
		"Audio":   {"mp3"},
		"Imagens": {"jpg"},
	}, "Other")

	assert.Equal(t, []string{"Audio", "Imagens", "Videos"}, rules.Labels())
	assert.Equal(t, "Other", rules.FallbackLabel())
}

func TestFallbackLabel(t *testing.T) {
	assert.Equal(t, classifier.DefaultFallback, classifier.Ruleset{}.FallbackLabel())
	assert.Equal(t, "Misc", classifier.Ruleset{Fallback: "Misc"}.FallbackLabel())
}

func TestDuplicates(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		rules := defaultRules()
		assert.Empty(t, rules.Duplicates())
	})

	t.Run("reports_every_owner_in_order", func(t *testing.T) {
		rules := classifier.NewRuleset([]classifier.Category{
			{Name: "Codigos", Extensions: []string{"sh", "ts", "js"}},
			{Name: "Aplicativos", Extensions: []string{"SH", "exe"}},
			{Name: "Videos", Extensions: []string{"ts", "mp4"}},
		}, "")

		dups := rules.Duplicates()
		require.Len(t, dups, 2)
		assert.Equal(t, classifier.Duplicate{Extension: "sh", Categories: []string{"Codigos", "Aplicativos"}}, dups[0])
		assert.Equal(t, classifier.Duplicate{Extension: "ts", Categories: []string{"Codigos", "Videos"}}, dups[1])
	})

	t.Run("repeat_within_one_category_is_not_duplicate", func(t *testing.T) {
		rules := classifier.NewRuleset([]classifier.Category{
			{Name: "Imagens", Extensions: []string{"jpg", "JPG"}},
		}, "")
		assert.Empty(t, rules.Duplicates())
	})
}
