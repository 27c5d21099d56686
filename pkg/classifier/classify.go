package classifier

import (
	"path/filepath"
	"strings"
)

// Extension returns the lowercased extension token of the final component of
// path, without the dot. ok is false when the name has no extension: no dot,
// only a leading dot (".bashrc"), or nothing after the last dot ("file.").
func Extension(path string) (token string, ok bool) {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}

	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}
	return strings.ToLower(name[idx+1:]), true
}

// Classify returns the category label for path.
func Classify(path string, rules Ruleset) string {
	token, ok := Extension(path)
	if !ok {
		return rules.FallbackLabel()
	}

	for _, cat := range rules.Categories {
		for _, ext := range cat.Extensions {
			if strings.ToLower(ext) == token {
				return cat.Name
			}
		}
	}
	return rules.FallbackLabel()
}
