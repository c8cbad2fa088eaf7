package quotemark

// GlyphSet holds the four quotation marks of one language: the primary
// (outer) pair and the secondary (nested) pair. Marks are strings, not
// runes; some languages quote with multi-character marks (Lojban closes a
// primary quotation with "li'u").
//
// A GlyphSet is complete or does not exist: all four marks must be
// non-empty. Partial sets are reported as errors, never filled in silently.
type GlyphSet struct {
	PrimaryLeft    string
	PrimaryRight   string
	SecondaryLeft  string
	SecondaryRight string
}

// Pair returns the opening and closing marks for the given quote kind.
// ok is false when kind is neither QuotePrimary nor QuoteSecondary.
func (g GlyphSet) Pair(kind QuoteKind) (open, close string, ok bool) {
	switch kind {
	case QuotePrimary:
		return g.PrimaryLeft, g.PrimaryRight, true
	case QuoteSecondary:
		return g.SecondaryLeft, g.SecondaryRight, true
	default:
		return "", "", false
	}
}

// IsZero reports whether g is the zero GlyphSet (no marks at all).
func (g GlyphSet) IsZero() bool {
	return g == GlyphSet{}
}

// validate checks completeness: every mark must be non-empty.
func (g GlyphSet) validate(tag string) error {
	if g.PrimaryLeft == "" || g.PrimaryRight == "" ||
		g.SecondaryLeft == "" || g.SecondaryRight == "" {
		return &IncompleteSetError{Tag: tag}
	}
	return nil
}
