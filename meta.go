package quotemark

import "fmt"

// Metadata field names recognized by ConfigFromMeta, in priority order.
// The host decodes its metadata surface (YAML header, JSON front matter,
// whatever) into plain Go values first; this file never sees surface syntax.
const (
	// MetaMarks holds an explicit mark list: four strings, or one string
	// that is split into exactly four single-character marks.
	MetaMarks = "quotation-marks"
	// MetaLanguage holds the explicit quotation language tag.
	MetaLanguage = "quotation-lang"
	// MetaLang holds the generic document language tag.
	MetaLang = "lang"
)

// MetaValueError reports a metadata value whose shape cannot be decoded
// (e.g. a number where a string or string list is expected).
type MetaValueError struct {
	Key string
}

func (e *MetaValueError) Error() string {
	return fmt.Sprintf("quotemark: metadata field %q: expected a string or list of strings", e.Key)
}

func (e *MetaValueError) Unwrap() error { return ErrConfig }

// ConfigFromMeta builds a DocumentConfig from already-decoded metadata
// values. All recognized fields are captured; priority between them is
// applied later by ResolveConfig. A single-string mark value is split into
// per-rune marks; count validation also happens in ResolveConfig, so a
// wrong-length string surfaces as the same configuration diagnostic as a
// wrong-length list.
//
// Only value shapes are validated here: a field of an unusable type returns
// a *MetaValueError.
func ConfigFromMeta(meta map[string]any) (DocumentConfig, error) {
	var cfg DocumentConfig

	if v, ok := meta[MetaMarks]; ok {
		marks, err := decodeMarks(MetaMarks, v)
		if err != nil {
			return DocumentConfig{}, err
		}
		cfg.Marks = marks
	}
	if v, ok := meta[MetaLanguage]; ok {
		s, ok := v.(string)
		if !ok {
			return DocumentConfig{}, &MetaValueError{Key: MetaLanguage}
		}
		cfg.Language = s
	}
	if v, ok := meta[MetaLang]; ok {
		s, ok := v.(string)
		if !ok {
			return DocumentConfig{}, &MetaValueError{Key: MetaLang}
		}
		cfg.Lang = s
	}

	return cfg, nil
}

// decodeMarks turns a decoded metadata value into a mark list. Lists keep
// their elements as-is (marks may be multi-character); a bare string is
// split into single-rune marks.
func decodeMarks(key string, v any) ([]string, error) {
	switch v := v.(type) {
	case string:
		runes := []rune(v)
		marks := make([]string, len(runes))
		for i, r := range runes {
			marks[i] = string(r)
		}
		return marks, nil
	case []string:
		return v, nil
	case []any:
		marks := make([]string, len(v))
		for i, el := range v {
			s, ok := el.(string)
			if !ok {
				return nil, &MetaValueError{Key: key}
			}
			marks[i] = s
		}
		return marks, nil
	default:
		return nil, &MetaValueError{Key: key}
	}
}

// MarksFromMeta decodes a table of override entries (language tag to four
// marks) from already-decoded metadata values, as produced from an external
// override file. Entries that fail to decode are skipped with an
// error-severity diagnostic; the rest still apply. Tag grammar and mark
// completeness are validated later by NewTable.
func MarksFromMeta(meta map[string]any) (map[string]GlyphSet, []Diagnostic) {
	overrides := make(map[string]GlyphSet, len(meta))
	var diags []Diagnostic

	for tag, v := range meta {
		marks, err := decodeMarks(tag, v)
		if err != nil {
			diags = append(diags, errDiag(tag, err))
			continue
		}
		if len(marks) != 4 {
			diags = append(diags, errDiag(tag, &MarkCountError{Count: len(marks)}))
			continue
		}
		overrides[tag] = GlyphSet{
			PrimaryLeft:    marks[0],
			PrimaryRight:   marks[1],
			SecondaryLeft:  marks[2],
			SecondaryRight: marks[3],
		}
	}

	return overrides, diags
}
