package quotemark

import (
	"strings"

	"github.com/go-text/typesetting/language"
	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Tag is a simplified RFC 5646 language tag: a primary subtag of two or
// three letters, optionally followed by a hyphen and a region or variant
// subtag of one to eight letters (e.g. "en", "de-CH", "jbo"). Tags compare
// case-insensitively; Normalized returns the canonical lowercase form used
// as a table key.
type Tag string

// ParseTag validates s against the tag grammar and returns it as a Tag.
// Malformed tags are rejected with a *TagError, never coerced.
func ParseTag(s string) (Tag, error) {
	primary, rest, hyphen := strings.Cut(s, "-")
	if !isAlpha(primary) || len(primary) < 2 || len(primary) > 3 {
		return "", &TagError{Tag: s}
	}
	if hyphen && (!isAlpha(rest) || len(rest) < 1 || len(rest) > 8) {
		return "", &TagError{Tag: s}
	}
	return Tag(s), nil
}

// isAlpha reports whether s is non-empty and all ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Normalized returns the canonical lowercase form of the tag, suitable for
// case-insensitive table lookup.
func (t Tag) Normalized() language.Language {
	return language.NewLanguage(string(t))
}

// Primary returns the canonical form of the tag's primary subtag, stripping
// any region or variant part ("en-CA" -> "en").
func (t Tag) Primary() language.Language {
	primary, _, _ := strings.Cut(string(t.Normalized()), "-")
	return language.Language(primary)
}

// DisplayName renders a tag for diagnostics. Well-known tags gain a
// human-readable English name ("de-CH" -> `German (de-CH)`); anything else
// is returned quoted as-is, so diagnostics always name the original tag.
func (t Tag) DisplayName() string {
	parsed, err := xlanguage.Parse(string(t))
	if err != nil {
		return `"` + string(t) + `"`
	}
	name := display.English.Languages().Name(parsed)
	if name == "" {
		return `"` + string(t) + `"`
	}
	return name + " (" + string(t) + ")"
}
