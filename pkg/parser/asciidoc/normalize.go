package asciidoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// normalizeValue converts a block's rendered content into the plain text
// stored on leaf nodes. Preformatted content (listings, literal blocks,
// verse) is wrapped in <pre> so internal newlines and spacing survive
// extraction verbatim; everything else is reflowed to a single logical text
// run.
func normalizeValue(rendered string, preformatted bool) string {
	if preformatted {
		return extractText("<pre>" + rendered + "</pre>")
	}
	return strings.TrimSpace(extractText(rendered))
}

// extractText parses an HTML fragment and returns its text content with
// entities decoded. Whitespace runs collapse to single spaces except inside
// <pre> elements.
func extractText(fragment string) string {
	context := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		// The tokenizer does not fail on text input; fall back to the
		// fragment itself rather than losing content.
		return fragment
	}

	var builder strings.Builder
	for _, node := range nodes {
		writeText(&builder, node, false)
	}

	return builder.String()
}

func writeText(builder *strings.Builder, node *html.Node, pre bool) {
	if node.Type == html.TextNode {
		if pre {
			builder.WriteString(node.Data)
		} else {
			builder.WriteString(collapseSpace(node.Data))
		}
		return
	}

	if node.Type == html.ElementNode && node.DataAtom == atom.Pre {
		pre = true
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(builder, child, pre)
	}
}

// collapseSpace replaces every run of whitespace with a single space,
// preserving word boundaries at the segment edges.
func collapseSpace(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	inSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !inSpace {
				builder.WriteByte(' ')
				inSpace = true
			}
		default:
			builder.WriteRune(r)
			inSpace = false
		}
	}

	return builder.String()
}
