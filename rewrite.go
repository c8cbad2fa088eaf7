package quotemark

import (
	"log/slog"

	"github.com/go-text/typesetting/language"

	"github.com/gotypo/quotemark/cache"
)

// Option configures a Rewriter.
type Option func(*rewriterConfig)

// rewriterConfig holds configuration for Rewriter.
type rewriterConfig struct {
	cacheCapacity int
}

// WithResolutionCache enables memoization of tag resolution, sized to the
// given number of distinct tags. Useful when many documents share one
// Rewriter; a single document rarely carries enough distinct languages to
// benefit. A capacity <= 0 picks a default.
func WithResolutionCache(capacity int) Option {
	return func(c *rewriterConfig) {
		if capacity <= 0 {
			capacity = cache.DefaultCapacity
		}
		c.cacheCapacity = capacity
	}
}

// resolution is a memoized Resolve result.
type resolution struct {
	set GlyphSet
	ok  bool
}

// Rewriter rewrites quotation nodes against one table. A Rewriter is safe
// for concurrent use: the table is read-only and every Rewrite call owns its
// traversal state. The optional resolution cache is thread-safe and shared
// across calls.
type Rewriter struct {
	table *Table
	memo  *cache.Cache[language.Language, resolution]
}

// NewRewriter creates a Rewriter over the given table.
func NewRewriter(table *Table, opts ...Option) *Rewriter {
	var cfg rewriterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Rewriter{table: table}
	if cfg.cacheCapacity > 0 {
		r.memo = cache.New[language.Language, resolution](cfg.cacheCapacity)
	}
	return r
}

// resolve looks a tag up through the memo when one is enabled.
func (r *Rewriter) resolve(tag string) (GlyphSet, bool) {
	if r.memo == nil {
		return r.table.Resolve(tag)
	}
	res := r.memo.GetOrCreate(language.NewLanguage(tag), func() resolution {
		set, ok := r.table.Resolve(tag)
		return resolution{set: set, ok: ok}
	})
	return res.set, res.ok
}

// Rewrite resolves the document configuration once, then walks the tree in a
// single depth-first left-to-right pass, replacing every quotation node with
// {open mark, rewritten content, close mark} for the innermost language in
// scope. The input tree is not mutated; the returned tree shares untouched
// subtrees with the input.
//
// Recoverable conditions (invalid configuration, unresolvable languages)
// leave the affected scope or node untouched and are returned as
// diagnostics. The only error is a structural one: a quotation node whose
// kind is invalid aborts the rewrite.
func (r *Rewriter) Rewrite(root *Node, cfg DocumentConfig) (*Node, []Diagnostic, error) {
	if root == nil {
		return nil, nil, nil
	}

	def, haveDef, diags := ResolveConfig(cfg, r.table)
	w := &walk{
		r:       r,
		log:     Logger(),
		def:     def,
		haveDef: haveDef,
		diags:   diags,
	}
	for _, d := range diags {
		w.log.Warn("document configuration not usable", "reason", d.Message, "tag", d.Tag)
	}

	// The configured document language, when it resolved, is the base stack
	// entry. It is never popped.
	if base := cfg.baseTag(); base != "" && haveDef {
		if tag, err := ParseTag(base); err == nil {
			w.stack = append(w.stack, tag)
		}
	}

	repl, err := w.rewriteNode(root)
	if err != nil {
		return nil, w.diags, err
	}
	if len(repl) == 1 {
		return repl[0], w.diags, nil
	}
	// The root itself was a quotation: wrap its replacement sequence.
	return Element(repl...), w.diags, nil
}

// baseTag returns the configured document language, if the configuration is
// language-shaped.
func (c DocumentConfig) baseTag() string {
	if c.Marks != nil {
		return ""
	}
	if c.Language != "" {
		return c.Language
	}
	return c.Lang
}

// walk is the state of one traversal: the language-context stack and the
// collected diagnostics. A walk belongs to a single Rewrite call and is
// never shared.
type walk struct {
	r       *Rewriter
	log     *slog.Logger
	def     GlyphSet
	haveDef bool
	stack   []Tag // innermost active language last
	diags   []Diagnostic
}

// rewriteNodes rewrites a child sequence node by node, splicing replacement
// sequences in order.
func (w *walk) rewriteNodes(nodes []*Node) ([]*Node, error) {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		repl, err := w.rewriteNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, repl...)
	}
	return out, nil
}

// rewriteNode rewrites one node, returning its replacement sequence. Most
// nodes map to a single replacement; quotation nodes expand to
// {open, content..., close}.
func (w *walk) rewriteNode(n *Node) ([]*Node, error) {
	if n.Language != "" {
		tag, err := ParseTag(n.Language)
		if err != nil {
			w.diags = append(w.diags, errDiag(n.Language, err))
			w.log.Warn("ignoring malformed language scope", "tag", n.Language)
		} else {
			w.stack = append(w.stack, tag)
			defer func() { w.stack = w.stack[:len(w.stack)-1] }()
		}
	}

	if n.Kind == KindQuote {
		return w.rewriteQuote(n)
	}

	children, err := w.rewriteNodes(n.Children)
	if err != nil {
		return nil, err
	}
	clone := *n
	clone.Children = children
	return []*Node{&clone}, nil
}

// rewriteQuote replaces a quotation node with its mark-wrapped content, or
// leaves it in place (content still rewritten) when no glyph set applies.
func (w *walk) rewriteQuote(n *Node) ([]*Node, error) {
	if n.Quote != QuotePrimary && n.Quote != QuoteSecondary {
		return nil, &QuoteKindError{Kind: n.Quote}
	}

	children, err := w.rewriteNodes(n.Children)
	if err != nil {
		return nil, err
	}

	set, ok := w.activeSet()
	if !ok {
		// An unresolved document configuration was already diagnosed once;
		// only name the context here when a language scope is actually open
		// and failed to resolve.
		if len(w.stack) > 0 {
			w.diags = append(w.diags, warnf(w.contextTag(),
				"no quotation marks defined for %s", w.contextName()))
		}
		w.log.Warn("leaving quotation untouched", "context", w.contextName())
		clone := *n
		clone.Children = children
		return []*Node{&clone}, nil
	}

	open, close, _ := set.Pair(n.Quote)
	w.log.Debug("substituting quotation",
		"kind", n.Quote.String(), "open", open, "close", close)

	out := make([]*Node, 0, len(children)+2)
	out = append(out, Text(open))
	out = append(out, children...)
	out = append(out, Text(close))
	return out, nil
}

// activeSet resolves the innermost active language; when the stack is empty
// or the tag has no entry, the document default applies.
func (w *walk) activeSet() (GlyphSet, bool) {
	if len(w.stack) > 0 {
		if set, ok := w.r.resolve(string(w.stack[len(w.stack)-1])); ok {
			return set, true
		}
	}
	return w.def, w.haveDef
}

// contextTag returns the innermost active language tag, empty at document
// scope.
func (w *walk) contextTag() string {
	if len(w.stack) == 0 {
		return ""
	}
	return string(w.stack[len(w.stack)-1])
}

// contextName names the innermost active context for diagnostics.
func (w *walk) contextName() string {
	if len(w.stack) == 0 {
		return "the document"
	}
	return w.stack[len(w.stack)-1].DisplayName()
}
