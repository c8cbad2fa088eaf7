package quotemark

// DocumentConfig is the document-level quotation configuration, already
// decoded from whatever metadata surface the host uses. The fields form a
// fixed priority: explicit Marks beat an explicit quotation Language, which
// beats the generic document Lang. Only the highest populated field is
// honored; the rest are ignored. The zero value means "unset": the document
// is left untouched.
type DocumentConfig struct {
	// Marks is an explicit four-mark list: primary left/right, secondary
	// left/right. A list of any other length is a configuration error.
	Marks []string

	// Language is the explicit quotation language tag.
	Language string

	// Lang is the generic document language tag, the catch-all fallback.
	Lang string
}

// IsZero reports whether no configuration field is populated.
func (c DocumentConfig) IsZero() bool {
	return c.Marks == nil && c.Language == "" && c.Lang == ""
}

// ResolveConfig resolves the document configuration against the table into
// the document's default glyph set. ok is false when the document gets no
// default: either nothing is configured (no diagnostic) or the configured
// branch failed (one diagnostic, reported here once rather than per node).
//
// Exactly one branch runs, in priority order:
//
//   - Marks: must contain exactly four non-empty marks; wrong count or an
//     empty mark is an error-severity configuration diagnostic.
//   - Language, then Lang: the tag must match the tag grammar (malformed is
//     an error diagnostic); a well-formed tag with no table entry degrades
//     to a warning and no substitution, not a failure.
func ResolveConfig(cfg DocumentConfig, table *Table) (set GlyphSet, ok bool, diags []Diagnostic) {
	switch {
	case cfg.Marks != nil:
		if len(cfg.Marks) != 4 {
			return GlyphSet{}, false, []Diagnostic{errDiag("", &MarkCountError{Count: len(cfg.Marks)})}
		}
		set := GlyphSet{
			PrimaryLeft:    cfg.Marks[0],
			PrimaryRight:   cfg.Marks[1],
			SecondaryLeft:  cfg.Marks[2],
			SecondaryRight: cfg.Marks[3],
		}
		if err := set.validate(""); err != nil {
			return GlyphSet{}, false, []Diagnostic{errDiag("", err)}
		}
		return set, true, nil

	case cfg.Language != "":
		return resolveConfigTag(cfg.Language, table)

	case cfg.Lang != "":
		return resolveConfigTag(cfg.Lang, table)

	default:
		return GlyphSet{}, false, nil
	}
}

// resolveConfigTag handles the two language-tag branches of ResolveConfig.
func resolveConfigTag(raw string, table *Table) (GlyphSet, bool, []Diagnostic) {
	tag, err := ParseTag(raw)
	if err != nil {
		return GlyphSet{}, false, []Diagnostic{errDiag(raw, err)}
	}
	set, ok := table.Resolve(string(tag))
	if !ok {
		return GlyphSet{}, false, []Diagnostic{
			warnf(raw, "no quotation marks defined for %s", tag.DisplayName()),
		}
	}
	return set, true, nil
}
