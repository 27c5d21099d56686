// Test Type: Unit Test
// Description: Tests for extension extraction and category lookup

package classifier_test

import (
	"testing"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/stretchr/testify/assert"
)

func defaultRules() classifier.Ruleset {
	return classifier.NewRuleset([]classifier.Category{
		{Name: "Imagens", Extensions: []string{"jpg", "jpeg", "png"}},
		{Name: "Documentos", Extensions: []string{"pdf", "txt", "md"}},
		{Name: "Compactados", Extensions: []string{"zip", "gz"}},
	}, "")
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path   string
		token  string
		wantOK bool
	}{
		{"photo.jpg", "jpg", true},
		{"photo.JPG", "jpg", true},
		{"/some/dir/archive.tar.gz", "gz", true},
		{"dir.with.dots/README", "", false},
		{"README", "", false},
		{".bashrc", "", false},
		{"..bashrc", "bashrc", true},
		{".env.local", "local", true},
		{"trailing.", "", false},
		{"", "", false},
		{".", "", false},
		{"..", "", false},
		{"/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			token, ok := classifier.Extension(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestClassify(t *testing.T) {
	rules := defaultRules()

	t.Run("no_extension_falls_back", func(t *testing.T) {
		for _, p := range []string{"README", "Makefile", ".bashrc", "notes.", "dir.d/LICENSE"} {
			assert.Equal(t, classifier.DefaultFallback, classifier.Classify(p, rules), p)
		}
	})

	t.Run("unique_extension_maps_to_category", func(t *testing.T) {
		assert.Equal(t, "Imagens", classifier.Classify("foto.jpg", rules))
		assert.Equal(t, "Documentos", classifier.Classify("/tmp/report.pdf", rules))
		assert.Equal(t, "Compactados", classifier.Classify("backup.tar.gz", rules))
	})

	t.Run("case_insensitive", func(t *testing.T) {
		assert.Equal(t, classifier.Classify("a.jpg", rules), classifier.Classify("A.JPG", rules))
		assert.Equal(t, "Imagens", classifier.Classify("Photo.PnG", rules))
	})

	t.Run("rule_tokens_compared_case_insensitively", func(t *testing.T) {
		upper := classifier.NewRuleset([]classifier.Category{
			{Name: "Videos", Extensions: []string{"MP4", "Mov"}},
		}, "")
		assert.Equal(t, "Videos", classifier.Classify("clip.mp4", upper))
		assert.Equal(t, "Videos", classifier.Classify("clip.MOV", upper))
	})

	t.Run("unknown_extension_falls_back", func(t *testing.T) {
		assert.Equal(t, "Outros", classifier.Classify("arquivo.xyz123", rules))
	})

	t.Run("malformed_rule_tokens_never_match", func(t *testing.T) {
		malformed := classifier.NewRuleset([]classifier.Category{
			{Name: "Imagens", Extensions: []string{".jpg", " png", "gif "}},
		}, "")
		assert.Equal(t, "Outros", classifier.Classify("a.jpg", malformed))
		assert.Equal(t, "Outros", classifier.Classify("a.png", malformed))
		assert.Equal(t, "Outros", classifier.Classify("a.gif", malformed))
	})

	t.Run("custom_fallback", func(t *testing.T) {
		custom := classifier.NewRuleset(nil, "Other")
		assert.Equal(t, "Other", classifier.Classify("a.jpg", custom))
		assert.Equal(t, "Other", classifier.Classify("README", custom))
	})

	t.Run("first_category_wins_on_duplicates", func(t *testing.T) {
		dup := classifier.NewRuleset([]classifier.Category{
			{Name: "Codigos", Extensions: []string{"sh", "py"}},
			{Name: "Aplicativos", Extensions: []string{"sh", "exe"}},
		}, "")
		assert.Equal(t, "Codigos", classifier.Classify("install.sh", dup))
		assert.Equal(t, "Aplicativos", classifier.Classify("setup.exe", dup))
	})

	t.Run("imagens_example", func(t *testing.T) {
		example := classifier.FromMap(map[string][]string{"Imagens": {"jpg", "png"}}, "")
		assert.Equal(t, "Imagens", classifier.Classify("photo.JPG", example))
	})
}
