package asciidoc

import (
	"strings"

	"github.com/yaklabco/adocast/internal/logging"
	"github.com/yaklabco/adocast/pkg/document"
	"github.com/yaklabco/adocast/pkg/langdetect"
	"github.com/yaklabco/adocast/pkg/txtast"
)

// converter walks one element tree against one source text. It owns the
// line array and source index for the duration of a single conversion and
// retains no references afterwards.
type converter struct {
	text  string
	lines []string
	index SourceIndex
	opts  options
}

func newConverter(content []byte, opts options) *converter {
	text := string(content)
	lines := strings.Split(text, "\n")

	return &converter{
		text:  text,
		lines: lines,
		index: NewSourceIndex(lines),
		opts:  opts,
	}
}

// document converts the root element. An empty child set yields the
// canonical empty document: a zero-width node on line 1.
func (c *converter) document(root document.Element) *txtast.Node {
	cur := cursor{min: 1, max: len(c.lines), startColumn: -1}

	var nodes []*txtast.Node

	// A real document title carries both a title and a level; a header-less
	// document has neither and gets no synthesized Header.
	if _, hasLevel := root.Level(); hasLevel && root.Title() != "" {
		if header := c.header(root, 1, cur); header != nil {
			nodes = append(nodes, header)
		}
	}

	nodes = append(nodes, c.childNodes(root.Children(), cur)...)

	if len(nodes) == 0 {
		empty := txtast.Position{Line: 1, Column: 0}
		return c.spanNode(txtast.NodeDocument, txtast.Span{Start: empty, End: empty})
	}

	span := txtast.Span{
		Start: nodes[0].Loc.Start,
		End:   nodes[len(nodes)-1].Loc.End,
	}

	doc := c.spanNode(txtast.NodeDocument, span)
	for _, node := range nodes {
		txtast.AppendChild(doc, node)
	}

	return doc
}

// element dispatches on the element's context tag. Unsupported kinds yield
// zero nodes; the emptiness propagates upward and the element vanishes from
// the output rather than corrupting sibling spans.
func (c *converter) element(el document.Element, cur cursor) []*txtast.Node {
	switch el.Context() {
	case document.ContextPreamble:
		// Grouping artifact with no textual identity of its own.
		return c.childNodes(el.Children(), cur)

	case document.ContextParagraph, document.ContextAdmonition,
		document.ContextExample, document.ContextLiteral,
		document.ContextOpen, document.ContextPass, document.ContextSidebar:
		return c.paragraph(el, cur)

	case document.ContextUList, document.ContextOList, document.ContextCoList:
		return c.list(el, cur)

	case document.ContextDList:
		return c.descriptionList(el, cur)

	case document.ContextQuote, document.ContextVerse:
		return c.quote(el, cur)

	case document.ContextSection, document.ContextFloatingTitle:
		return c.section(el, cur)

	case document.ContextTable:
		return c.table(el, cur)

	case document.ContextListing, document.ContextStem:
		return c.codeBlock(el, cur)

	default:
		return nil
	}
}

// childNodes converts each child with a cursor narrowed to its sibling
// window and concatenates the results.
func (c *converter) childNodes(children []document.Element, cur cursor) []*txtast.Node {
	var nodes []*txtast.Node
	for i := range children {
		nodes = append(nodes, c.element(children[i], cur.window(children, i))...)
	}
	return nodes
}

// paragraph converts the paragraph-like family. Elements with nested blocks
// become container paragraphs; leaf elements locate their literal source and
// carry one Str child with the normalized rendered content.
func (c *converter) paragraph(el document.Element, cur cursor) []*txtast.Node {
	if children := el.Children(); len(children) > 0 {
		nodes := c.childNodes(children, cur)
		if len(nodes) == 0 {
			return nil
		}

		para := c.wrap(txtast.NodeParagraph, nodes)
		applyTitle(para, el)
		return []*txtast.Node{para}
	}

	source := el.Source()
	if source == "" {
		return nil
	}

	span, ok := c.findLocation(strings.Split(source, "\n"), cur, txtast.NodeParagraph)
	if !ok {
		c.dropped(el, cur)
		return nil
	}

	preformatted := el.Context() == document.ContextLiteral

	para := c.spanNode(txtast.NodeParagraph, span)
	txtast.AppendChild(para, c.strNode(span, el.Converted(), preformatted))
	applyTitle(para, el)

	return []*txtast.Node{para}
}

// quote converts quote and verse blocks. Verse content is the element's own
// preformatted text; quotes wrap their converted children.
func (c *converter) quote(el document.Element, cur cursor) []*txtast.Node {
	if el.Context() == document.ContextVerse {
		source := el.Source()
		if source == "" {
			return nil
		}

		span, ok := c.findLocation(strings.Split(source, "\n"), cur, txtast.NodeBlockQuote)
		if !ok {
			c.dropped(el, cur)
			return nil
		}

		para := c.spanNode(txtast.NodeParagraph, span)
		txtast.AppendChild(para, c.strNode(span, el.Converted(), true))

		quote := c.wrap(txtast.NodeBlockQuote, []*txtast.Node{para})
		applyTitle(quote, el)
		return []*txtast.Node{quote}
	}

	nodes := c.childNodes(el.Children(), cur)
	if len(nodes) == 0 {
		return nil
	}

	quote := c.wrap(txtast.NodeBlockQuote, nodes)
	applyTitle(quote, el)
	return []*txtast.Node{quote}
}

// section converts sections and floating titles: a Header for the title,
// followed by the section's converted children as siblings. The raw title
// locates the span; the rendered title is the stored value. A title that
// cannot be located drops the whole section.
func (c *converter) section(el document.Element, cur cursor) []*txtast.Node {
	level, _ := el.Level()

	header := c.header(el, level+1, cur)
	if header == nil {
		c.dropped(el, cur)
		return nil
	}

	childCur := cursor{min: header.Loc.End.Line + 1, max: cur.max, startColumn: -1}

	return append([]*txtast.Node{header}, c.childNodes(el.Children(), childCur)...)
}

// header locates an element's title and builds a Header node of the given
// depth containing one Str with the rendered title.
func (c *converter) header(el document.Element, depth int, cur cursor) *txtast.Node {
	raw := el.RawTitle()
	if raw == "" {
		raw = el.Title()
	}
	if raw == "" {
		return nil
	}

	span, ok := c.findLocation([]string{raw}, cur, txtast.NodeHeader)
	if !ok {
		return nil
	}

	header := c.spanNode(txtast.NodeHeader, span)
	header.SetDepth(depth)
	txtast.AppendChild(header, c.strNode(span, el.Title(), false))

	return header
}

// list converts unordered, ordered and callout lists.
func (c *converter) list(el document.Element, cur cursor) []*txtast.Node {
	items := el.Children()

	var nodes []*txtast.Node
	for i := range items {
		nodes = append(nodes, c.listItem(items[i], cur.window(items, i))...)
	}
	if len(nodes) == 0 {
		return nil
	}

	return []*txtast.Node{c.wrap(txtast.NodeList, nodes)}
}

// descriptionList flattens term/definition pairs into one List.
func (c *converter) descriptionList(el document.Element, cur cursor) []*txtast.Node {
	var entries []document.Element
	for _, pair := range el.Pairs() {
		entries = append(entries, pair.Terms...)
		if pair.Description != nil {
			entries = append(entries, pair.Description)
		}
	}

	var nodes []*txtast.Node
	for i := range entries {
		nodes = append(nodes, c.listItem(entries[i], cur.window(entries, i))...)
	}
	if len(nodes) == 0 {
		return nil
	}

	return []*txtast.Node{c.wrap(txtast.NodeList, nodes)}
}

// listItem converts one list entry: a synthesized leading paragraph from the
// item's principal text (when present and locatable), then any nested block
// children. An item with nothing locatable produces no node.
func (c *converter) listItem(el document.Element, cur cursor) []*txtast.Node {
	var nodes []*txtast.Node

	if source := el.Source(); source != "" {
		span, ok := c.findLocation(strings.Split(source, "\n"), cur, txtast.NodeListItem)
		if ok {
			para := c.spanNode(txtast.NodeParagraph, span)
			txtast.AppendChild(para, c.strNode(span, el.Converted(), false))
			nodes = append(nodes, para)
		} else {
			c.dropped(el, cur)
		}
	}

	nodes = append(nodes, c.childNodes(el.Children(), cur)...)
	if len(nodes) == 0 {
		return nil
	}

	return []*txtast.Node{c.wrap(txtast.NodeListItem, nodes)}
}

// table converts a table element. Head, body and foot row groups flatten
// into one ordered sequence. Each row re-anchors its cursor to its own first
// cell's line number so a later row's cell text can never match inside an
// earlier row's remaining window.
func (c *converter) table(el document.Element, cur cursor) []*txtast.Node {
	head, body, foot := el.Rows()

	var rows [][]document.Cell
	rows = append(rows, head...)
	rows = append(rows, body...)
	rows = append(rows, foot...)

	var nodes []*txtast.Node
	for _, row := range rows {
		if node := c.tableRow(row, cur); node != nil {
			nodes = append(nodes, node)
		}
	}
	if len(nodes) == 0 {
		return nil
	}

	tbl := c.wrap(txtast.NodeTable, nodes)
	applyTitle(tbl, el)
	return []*txtast.Node{tbl}
}

// tableRow converts one row. Within the row the cursor runs forward: each
// located cell narrows the next cell's window to start at its own end
// position, so cells sharing a source line resolve left to right. A cell
// reported on a later line re-anchors the cursor to that line and sheds the
// column carryover, which only applies to cells sharing the previous cell's
// end line.
func (c *converter) tableRow(cells []document.Cell, cur cursor) *txtast.Node {
	if len(cells) == 0 {
		return nil
	}

	run := cursor{min: cur.min, max: cur.max, startColumn: 0}
	if n := cells[0].LineNumber(); n > 0 {
		run.min = n
	}

	var nodes []*txtast.Node
	for _, cell := range cells {
		if n := cell.LineNumber(); n > run.min {
			run = cursor{min: n, max: cur.max, startColumn: 0}
		}
		node := c.tableCell(cell, run)
		if node == nil {
			continue
		}
		nodes = append(nodes, node)
		run = cursor{min: node.Loc.End.Line, max: cur.max, startColumn: node.Loc.End.Column}
	}
	if len(nodes) == 0 {
		return nil
	}

	return c.wrap(txtast.NodeTableRow, nodes)
}

// tableCell converts one cell. Cells styled as embedded documents recurse
// into their inner element tree; all others locate their literal text.
func (c *converter) tableCell(cell document.Cell, cur cursor) *txtast.Node {
	if cell.Style() == document.StyleAsciiDoc && cell.InnerDocument() != nil {
		nodes := c.childNodes(cell.InnerDocument().Children(), cur)
		if len(nodes) == 0 {
			return nil
		}
		return c.wrap(txtast.NodeTableCell, nodes)
	}

	span, ok := c.findLocation(strings.Split(cell.Source(), "\n"), cur, txtast.NodeTableCell)
	if !ok {
		return nil
	}

	node := c.spanNode(txtast.NodeTableCell, span)
	txtast.AppendChild(node, c.strNode(span, cell.Text(), false))

	return node
}

// codeBlock converts listing and stem blocks. Matching is verbatim: the
// finder must not skip comment-shaped lines inside literal content.
func (c *converter) codeBlock(el document.Element, cur cursor) []*txtast.Node {
	source := el.Source()
	if source == "" {
		return nil
	}

	span, ok := c.findLocation(strings.Split(source, "\n"), cur, txtast.NodeCodeBlock)
	if !ok {
		c.dropped(el, cur)
		return nil
	}

	node := c.spanNode(txtast.NodeCodeBlock, span)
	node.Value = normalizeValue(el.Converted(), true)

	lang := el.Attr(document.AttrLanguage)
	if lang == "" && c.opts.detectLanguage {
		lang = langdetect.Detect([]byte(source))
	}
	if lang != "" {
		node.SetLang(lang)
	}
	applyTitle(node, el)

	return []*txtast.Node{node}
}

// spanNode builds a node whose Range derives from the span via the source
// index and whose Raw is the verbatim substring it covers.
func (c *converter) spanNode(nodeType txtast.NodeType, span txtast.Span) *txtast.Node {
	node := txtast.NewNode(nodeType)
	node.Loc = span
	node.Range = txtast.Range{
		Start: c.index.PositionToIndex(span.Start),
		End:   c.index.PositionToIndex(span.End),
	}
	node.Raw = c.text[node.Range.Start:node.Range.End]

	return node
}

// strNode builds a Str leaf over span with the normalized rendered content.
func (c *converter) strNode(span txtast.Span, rendered string, preformatted bool) *txtast.Node {
	node := c.spanNode(txtast.NodeStr, span)
	node.Value = normalizeValue(rendered, preformatted)
	return node
}

// wrap builds a container node spanning first-to-last child. Aggregate kinds
// keep Raw empty; see txtast.Node.Raw.
func (c *converter) wrap(nodeType txtast.NodeType, children []*txtast.Node) *txtast.Node {
	span := txtast.Span{
		Start: children[0].Loc.Start,
		End:   children[len(children)-1].Loc.End,
	}

	node := c.spanNode(nodeType, span)
	if isAggregate(nodeType) {
		node.Raw = ""
	}

	for _, child := range children {
		txtast.AppendChild(node, child)
	}

	return node
}

func isAggregate(nodeType txtast.NodeType) bool {
	switch nodeType {
	case txtast.NodeList, txtast.NodeListItem, txtast.NodeTable, txtast.NodeTableRow:
		return true
	default:
		return false
	}
}

func applyTitle(node *txtast.Node, el document.Element) {
	if title := el.Title(); title != "" {
		node.SetTitle(title)
	}
}

// dropped records an unresolvable span at debug level. Not an error: the
// element and any now-empty ancestors simply vanish from the output.
func (c *converter) dropped(el document.Element, cur cursor) {
	if c.opts.logger == nil {
		return
	}

	c.opts.logger.Debug("no span found for element",
		logging.FieldContext, el.Context(),
		logging.FieldLine, el.LineNumber(),
		logging.FieldWindowMin, cur.min,
		logging.FieldWindowMax, cur.max,
	)
}
