package quotemark

import "github.com/go-text/typesetting/language"

// Table maps normalized language tags to glyph sets. A Table is built once
// from the built-in entries plus optional caller overrides and is read-only
// afterward, so it is safe to share across concurrently rewritten documents.
type Table struct {
	marks map[language.Language]GlyphSet
}

// NewTable builds a lookup table from the built-in entries and the given
// overrides. Override keys are matched case-insensitively; an override
// replaces the built-in entry with the same normalized tag.
//
// An override with a malformed tag or an incomplete glyph set fails that
// entry with an error-severity diagnostic; the remaining overrides still
// apply. The built-in table itself is never mutated.
func NewTable(overrides map[string]GlyphSet) (*Table, []Diagnostic) {
	marks := make(map[language.Language]GlyphSet, len(builtinMarks)+len(overrides))
	for tag, set := range builtinMarks {
		marks[tag] = set
	}

	var diags []Diagnostic
	for raw, set := range overrides {
		tag, err := ParseTag(raw)
		if err != nil {
			diags = append(diags, errDiag(raw, err))
			continue
		}
		if err := set.validate(raw); err != nil {
			diags = append(diags, errDiag(raw, err))
			continue
		}
		marks[tag.Normalized()] = set
	}

	return &Table{marks: marks}, diags
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.marks) }

// Lookup returns the entry stored under the exact normalized tag, without
// any fallback. Most callers want Resolve instead.
func (t *Table) Lookup(tag string) (GlyphSet, bool) {
	set, ok := t.marks[language.NewLanguage(tag)]
	return set, ok
}

// Tags returns the normalized tags present in the table, in no particular
// order. Intended for hosts that list supported languages.
func (t *Table) Tags() []string {
	tags := make([]string, 0, len(t.marks))
	for tag := range t.marks {
		tags = append(tags, string(tag))
	}
	return tags
}
