package classifier

import (
	"sort"
	"strings"
)

// DefaultFallback is the label used when no rule matches.
const DefaultFallback = "Outros"

// Category is one entry of a Ruleset.
type Category struct {
	Name       string
	Extensions []string
}

// Ruleset is an ordered list of categories. Earlier categories win when an
// extension appears in more than one of them.
type Ruleset struct {
	Categories []Category
	Fallback   string
}

// NewRuleset builds a ruleset preserving the given category order.
func NewRuleset(categories []Category, fallback string) Ruleset {
	return Ruleset{Categories: categories, Fallback: fallback}
}

// FromMap builds a ruleset from an unordered label -> extensions mapping.
// Labels are sorted so precedence between duplicated extensions is stable.
func FromMap(rules map[string][]string, fallback string) Ruleset {
	labels := make([]string, 0, len(rules))
	for label := range rules {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	categories := make([]Category, 0, len(labels))
	for _, label := range labels {
		categories = append(categories, Category{Name: label, Extensions: rules[label]})
	}
	return NewRuleset(categories, fallback)
}

// FallbackLabel returns the configured fallback, or DefaultFallback.
func (r Ruleset) FallbackLabel() string {
	if r.Fallback == "" {
		return DefaultFallback
	}
	return r.Fallback
}

// Duplicate is an extension token claimed by more than one category.
// Categories is in ruleset order; the first one wins classification.
type Duplicate struct {
	Extension  string
	Categories []string
}

// Duplicates lists extension tokens (compared lowercased) that appear in more
// than one category, sorted by extension.
func (r Ruleset) Duplicates() []Duplicate {
	owners := make(map[string][]string)
	for _, cat := range r.Categories {
		seen := make(map[string]bool)
		for _, ext := range cat.Extensions {
			token := strings.ToLower(ext)
			if seen[token] {
				continue
			}
			seen[token] = true
			owners[token] = append(owners[token], cat.Name)
		}
	}

	var dups []Duplicate
	for token, cats := range owners {
		if len(cats) > 1 {
			dups = append(dups, Duplicate{Extension: token, Categories: cats})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Extension < dups[j].Extension })
	return dups
}

// Labels returns the category names in ruleset order.
func (r Ruleset) Labels() []string {
	labels := make([]string, len(r.Categories))
	for i, cat := range r.Categories {
		labels[i] = cat.Name
	}
	return labels
}
