package directory

import "strings"

// MatchKind tags how a CategoryMatcher decides membership.
type MatchKind int

const (
	// MatchSynonyms matches when the normalized category contains any of the needles.
	MatchSynonyms MatchKind = iota
	// MatchSubstring matches when the normalized category contains the requested slug.
	MatchSubstring
)

func (k MatchKind) String() string {
	switch k {
	case MatchSynonyms:
		return "synonyms"
	case MatchSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// CategoryMatcher decides whether a business category belongs to a category slug.
// Matching is intentionally permissive (substring) because display names such as
// "Beauty & Wellness" never equal their slug "beauty".
type CategoryMatcher struct {
	Kind    MatchKind
	Needles []string
}

// Match reports whether normalized (see CategorySlug) satisfies the matcher.
func (m CategoryMatcher) Match(normalized string) bool {
	for _, needle := range m.Needles {
		if strings.Contains(normalized, needle) {
			return true
		}
	}
	return false
}

// Synonyms builds a MatchSynonyms matcher.
func Synonyms(needles ...string) CategoryMatcher {
	return CategoryMatcher{Kind: MatchSynonyms, Needles: needles}
}

// DefaultCategoryMatchers is the canonical synonym table. Slugs outside it fall
// back to substring containment of the slug itself.
func DefaultCategoryMatchers() map[string]CategoryMatcher {
	return map[string]CategoryMatcher{
		"beauty":   Synonyms("beauty"),
		"fashion":  Synonyms("fashion"),
		"home":     Synonyms("home"),
		"food":     Synonyms("food"),
		"services": Synonyms("services", "education"),
	}
}

// matcherFor resolves the matcher for a (case-insensitive) category slug.
func (d *Directory) matcherFor(categorySlug string) CategoryMatcher {
	slug := strings.ToLower(categorySlug)
	if m, ok := d.matchers[slug]; ok {
		return m
	}
	return CategoryMatcher{Kind: MatchSubstring, Needles: []string{slug}}
}
