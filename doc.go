// Package quotemark rewrites abstract quotation nodes in a parsed document
// tree into literal quotation-mark glyphs appropriate to the language in
// scope. It is a post-processing pass over an already-parsed tree, not a
// parser.
//
// The pipeline has three stages:
//
//   - Table: a language-tag to glyph-set lookup table, built once from
//     built-in entries plus optional caller overrides, read-only afterward.
//   - Config resolution: the document-level configuration (explicit marks,
//     explicit quotation language, or generic document language) is resolved
//     once into the document's default glyph set, or into "no substitution"
//     when nothing is configured.
//   - Rewriting: a single depth-first walk over the tree tracks the stack of
//     active per-node language scopes and replaces every quotation node with
//     the sequence {open mark, content, close mark}.
//
// # Example usage
//
//	table, _ := quotemark.NewTable(nil)
//	rw := quotemark.NewRewriter(table)
//
//	doc := quotemark.Element(
//		quotemark.Quote(quotemark.QuotePrimary, quotemark.Text("Hallo")),
//	)
//	doc.Language = "de"
//
//	out, diags, err := rw.Rewrite(doc, quotemark.DocumentConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range diags {
//		log.Println(d)
//	}
//	// out now contains [Text("„"), Text("Hallo"), Text("“")] in place of
//	// the quotation node.
//
// # Language scoping
//
// A node's Language field opens a language scope covering the node and its
// descendants. Quotation nodes use the innermost open scope; when no scope is
// open (or the innermost language has no table entry) the document default
// applies. With neither, the quotation node is left untouched and a
// diagnostic is recorded.
//
// All recoverable conditions (unknown language, malformed tag, wrong mark
// count) degrade to "leave untouched" plus a diagnostic. The only fatal
// condition is a quotation node whose quote kind is not QuotePrimary or
// QuoteSecondary, which violates the tree contract this pass is built
// against.
//
// The Table is safe to share across concurrently rewritten documents; each
// Rewrite call owns its traversal state.
package quotemark
