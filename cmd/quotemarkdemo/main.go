// Command quotemarkdemo demonstrates the quotemark tree rewriter.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gotypo/quotemark"
)

func main() {
	var (
		lang    = flag.String("lang", "en", "document language tag")
		text    = flag.String("text", "Charmed, I'm sure", "quoted text")
		verbose = flag.Bool("v", false, "enable warning logs")
	)
	flag.Parse()

	if *verbose {
		quotemark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	table, diags := quotemark.NewTable(nil)
	rw := quotemark.NewRewriter(table)

	// A paragraph quoting the text, with a nested secondary quotation and a
	// French aside, to show language scoping.
	aside := quotemark.Quote(quotemark.QuotePrimary, quotemark.Text("bien sûr"))
	aside.Language = "fr"

	doc := quotemark.Element(
		quotemark.Quote(quotemark.QuotePrimary,
			quotemark.Text(*text),
			quotemark.Text(" — "),
			quotemark.Quote(quotemark.QuoteSecondary, quotemark.Text("quoted within")),
		),
		quotemark.Text(" "),
		aside,
	)

	out, rdiags, err := rw.Rewrite(doc, quotemark.DocumentConfig{Lang: *lang})
	if err != nil {
		log.Fatalf("rewrite failed: %v", err)
	}

	for _, d := range append(diags, rdiags...) {
		fmt.Fprintln(os.Stderr, d)
	}
	fmt.Println(flatten(out))
}

// flatten renders a tree as plain text, depth-first.
func flatten(n *quotemark.Node) string {
	var b strings.Builder
	var visit func(*quotemark.Node)
	visit = func(n *quotemark.Node) {
		b.WriteString(n.Text)
		for _, child := range n.Children {
			visit(child)
		}
	}
	visit(n)
	return b.String()
}
