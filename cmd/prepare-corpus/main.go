// Command prepare-corpus converts raw Thai text (optionally an HTML
// page) into the three-column corpus format, one character per line
// with its character type and a "?" placeholder tag. Whitespace runs
// become EOS boundary lines, so each whitespace-delimited chunk loads
// as one sequence.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/tagseq/pkg/tagseq/thaichar"
)

func main() {
	inPath := flag.String("in", "", "input file (default stdin)")
	outPath := flag.String("out", "", "output file (default stdout)")
	fromHTML := flag.Bool("html", false, "extract text from an HTML page first")
	flag.Parse()

	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("prepare-corpus: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("prepare-corpus: %v", err)
		}
		defer f.Close()
		out = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("prepare-corpus: %v", err)
	}
	text := string(data)
	if *fromHTML {
		text = extractText(text)
	}

	if err := writeCorpus(out, text); err != nil {
		log.Fatalf("prepare-corpus: %v", err)
	}
}

// extractText concatenates the text nodes of an HTML document, skipping
// script and style subtrees.
func extractText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fall back to the raw input if parsing fails
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}

func writeCorpus(out io.Writer, text string) error {
	w := bufio.NewWriter(out)

	pendingBoundary := false
	wrote := false
	for _, r := range text {
		if thaichar.Class(r) == thaichar.Space {
			// Collapse whitespace runs into a single boundary.
			pendingBoundary = wrote
			continue
		}
		if pendingBoundary {
			if _, err := fmt.Fprintf(w, "EOS %s O\n", thaichar.Space); err != nil {
				return err
			}
			pendingBoundary = false
		}
		if _, err := fmt.Fprintf(w, "%c %s ?\n", r, thaichar.Class(r)); err != nil {
			return err
		}
		wrote = true
	}
	if wrote {
		if _, err := fmt.Fprintf(w, "EOS %s O\n", thaichar.Space); err != nil {
			return err
		}
	}
	return w.Flush()
}
