// Package document models the element tree handed over by the external
// AsciiDoc processor. The processor is authoritative for syntax: elements
// arrive pre-parsed with reliable 1-based line numbers but without character
// offsets, which the converter re-derives against the original source.
//
// The package holds data contracts only. No parsing happens here.
package document

// Context tags the processor assigns to elements.
const (
	ContextDocument      = "document"
	ContextPreamble      = "preamble"
	ContextSection       = "section"
	ContextFloatingTitle = "floating_title"
	ContextParagraph     = "paragraph"
	ContextAdmonition    = "admonition"
	ContextExample       = "example"
	ContextLiteral       = "literal"
	ContextOpen          = "open"
	ContextPass          = "pass"
	ContextSidebar       = "sidebar"
	ContextQuote         = "quote"
	ContextVerse         = "verse"
	ContextUList         = "ulist"
	ContextOList         = "olist"
	ContextCoList        = "colist"
	ContextDList         = "dlist"
	ContextListItem      = "list_item"
	ContextListing       = "listing"
	ContextStem          = "stem"
	ContextTable         = "table"
)

// AttrLanguage is the block attribute naming a listing's source language.
const AttrLanguage = "language"

// StyleAsciiDoc marks a table cell whose content is an embedded document.
const StyleAsciiDoc = "asciidoc"

// Element is one node in the processor's parsed representation (not the
// output AST). Accessors mirror what the processor exposes with source-map
// support enabled.
type Element interface {
	// Context returns the element kind tag (e.g. "paragraph", "ulist").
	Context() string

	// LineNumber returns the 1-based source line the processor reported for
	// this element, or 0 when none was recorded.
	LineNumber() int

	// Children returns the nested block elements in document order.
	Children() []Element

	// Source returns the element's literal source text. For multi-line
	// content the lines are joined with "\n"; comment lines and inline
	// comments the processor strips are absent.
	Source() string

	// Converted returns the processor-rendered content of the element, with
	// structural markup and typographic substitutions applied.
	Converted() string

	// Title returns the rendered title, or "" when the element has none.
	Title() string

	// RawTitle returns the title exactly as written in the source. The
	// converter matches on this and stores the rendered form.
	RawTitle() string

	// Style returns the block style tag, or "".
	Style() string

	// Attr returns a named block attribute, or "" when absent.
	Attr(name string) string

	// Level returns the section nesting level (0 for the document itself)
	// and whether the element carries one at all. A document whose header
	// has a title but no level is a header-less document.
	Level() (int, bool)

	// Rows returns the head, body and foot row groups of a table element.
	// All three are nil for non-table elements.
	Rows() (head, body, foot [][]Cell)

	// Pairs returns the term/definition pairs of a description list.
	Pairs() []DescriptionPair
}

// Cell is a single table cell as reported by the processor.
type Cell interface {
	// LineNumber returns the 1-based source line of the cell, or 0.
	LineNumber() int

	// Source returns the cell's literal source text.
	Source() string

	// Text returns the cell's rendered text.
	Text() string

	// Style returns the cell style; StyleAsciiDoc marks embedded-document
	// content reachable via InnerDocument.
	Style() string

	// InnerDocument returns the embedded document root for asciidoc-style
	// cells, or nil.
	InnerDocument() Element
}

// DescriptionPair is one term/definition entry of a description list. The
// processor reports one or more terms followed by an optional description.
type DescriptionPair struct {
	Terms       []Element
	Description Element
}
