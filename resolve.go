package quotemark

import (
	"strings"

	"github.com/go-text/typesetting/language"
)

// Resolve finds the glyph set for a language tag, trying in order:
//
//  1. Exact match on the normalized tag.
//  2. For hyphenated tags, exact match on the primary subtag
//     ("en-CA" falls back to "en").
//  3. Prefix scan: any entry sharing the primary subtag but carrying a
//     region or variant part. When several regional entries qualify the
//     winner is unspecified; callers must not depend on which variant is
//     chosen. The scan favors the base language over arbitrary variants but
//     still prefers some variant over failing outright.
//
// ok is false when no step matches. Resolve performs lookup only; tag
// grammar validation is the caller's concern.
func (t *Table) Resolve(tag string) (GlyphSet, bool) {
	norm := language.NewLanguage(tag)
	if set, ok := t.marks[norm]; ok {
		return set, true
	}

	primary, _, hyphen := strings.Cut(string(norm), "-")
	if hyphen {
		if set, ok := t.marks[language.Language(primary)]; ok {
			return set, true
		}
	}

	// Map iteration order makes the multi-candidate case indeterminate.
	prefix := primary + "-"
	for key, set := range t.marks {
		if strings.HasPrefix(string(key), prefix) {
			return set, true
		}
	}

	return GlyphSet{}, false
}
