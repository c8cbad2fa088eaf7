package quotemark

import (
	"errors"
	"fmt"
)

// Error classes. Typed errors in this package unwrap to one of these, so
// hosts can classify with errors.Is without matching concrete types.
var (
	// ErrConfig marks recoverable configuration errors: malformed language
	// tags, wrong mark counts, incomplete override entries. The affected
	// scope is processed without substitution.
	ErrConfig = errors.New("quotemark: invalid configuration")

	// ErrStructural marks contract violations in the input tree. Structural
	// errors are fatal for the affected rewrite.
	ErrStructural = errors.New("quotemark: structural error")
)

// TagError reports a language tag that does not match the accepted grammar
// (a primary subtag of 2-3 letters, optionally followed by a hyphen and a
// subtag of 1-8 letters).
type TagError struct {
	Tag string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("quotemark: malformed language tag %q", e.Tag)
}

func (e *TagError) Unwrap() error { return ErrConfig }

// MarkCountError reports an explicit mark list that does not contain exactly
// four entries (primary left/right, secondary left/right).
type MarkCountError struct {
	Count int
}

func (e *MarkCountError) Error() string {
	return fmt.Sprintf("quotemark: want 4 quotation marks, got %d", e.Count)
}

func (e *MarkCountError) Unwrap() error { return ErrConfig }

// IncompleteSetError reports a glyph set with one or more empty marks. A
// glyph set is complete or does not exist; partial sets are never defaulted.
type IncompleteSetError struct {
	Tag string // owning table entry, empty for explicit document marks
}

func (e *IncompleteSetError) Error() string {
	if e.Tag == "" {
		return "quotemark: incomplete glyph set: empty mark"
	}
	return fmt.Sprintf("quotemark: incomplete glyph set for %q: empty mark", e.Tag)
}

func (e *IncompleteSetError) Unwrap() error { return ErrConfig }

// QuoteKindError reports a quotation node whose kind is neither QuotePrimary
// nor QuoteSecondary. This violates the node-shape contract of the rewrite
// pass and aborts it.
type QuoteKindError struct {
	Kind QuoteKind
}

func (e *QuoteKindError) Error() string {
	return fmt.Sprintf("quotemark: unrecognized quote kind %d", e.Kind)
}

func (e *QuoteKindError) Unwrap() error { return ErrStructural }
