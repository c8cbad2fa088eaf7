package quotemark

// NodeKind identifies the shape of a tree node as far as this pass cares:
// plain text, a quotation to rewrite, or anything else.
type NodeKind uint8

const (
	// KindElement is a generic structural node. The rewriter only looks at
	// its Language field and recurses into its children.
	KindElement NodeKind = iota
	// KindText is a text leaf carrying the Text payload.
	KindText
	// KindQuote marks a quotation whose children are to be wrapped in
	// language-appropriate marks.
	KindQuote
)

// QuoteKind selects which pair of a GlyphSet a quotation uses.
//
// The zero value is deliberately invalid: a KindQuote node must carry
// QuotePrimary or QuoteSecondary, anything else is a structural error.
type QuoteKind uint8

const (
	// QuotePrimary selects the outer quotation pair.
	QuotePrimary QuoteKind = iota + 1
	// QuoteSecondary selects the nested quotation pair.
	QuoteSecondary
)

// String returns the name of the quote kind.
func (k QuoteKind) String() string {
	switch k {
	case QuotePrimary:
		return "primary"
	case QuoteSecondary:
		return "secondary"
	default:
		return "invalid"
	}
}

// Node is an element of the document tree. The rewriter reads exactly three
// things: the optional Language scope, the quotation marker on KindQuote
// nodes, and the ordered Children. Everything else a host hangs off its
// nodes is opaque to this pass and passes through unchanged.
type Node struct {
	Kind NodeKind

	// Text is the payload of KindText leaves.
	Text string

	// Language, when non-empty, opens a language scope covering this node
	// and its descendants, overriding any inherited language.
	Language string

	// Quote selects the mark pair on KindQuote nodes.
	Quote QuoteKind

	// Children is the ordered substructure. Order is significant and
	// preserved by the rewriter.
	Children []*Node
}

// Text creates a text leaf.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Element creates a generic structural node with the given children.
func Element(children ...*Node) *Node {
	return &Node{Kind: KindElement, Children: children}
}

// Quote creates a quotation node of the given kind with the given content.
func Quote(kind QuoteKind, children ...*Node) *Node {
	return &Node{Kind: KindQuote, Quote: kind, Children: children}
}

// Equal reports whether two subtrees are structurally identical: same kind,
// payloads, language scopes, and recursively equal children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text ||
		n.Language != other.Language || n.Quote != other.Quote ||
		len(n.Children) != len(other.Children) {
		return false
	}
	for i, child := range n.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
