package document

// Block is a plain-data Element implementation. Hosts that drive an external
// processor build Block trees from its output; tests construct them directly.
// The zero value is a level-less element with no content.
type Block struct {
	ContextTag    string
	Line          int
	SourceText    string
	ConvertedText string
	TitleText     string
	RawTitleText  string
	StyleName     string
	LevelValue    int
	HasLevel      bool
	AttributeMap  map[string]string
	Elements      []Element

	// Table row groups, in processor order.
	HeadRows [][]Cell
	BodyRows [][]Cell
	FootRows [][]Cell

	// Description list entries.
	ItemPairs []DescriptionPair
}

var _ Element = (*Block)(nil)

// Context implements Element.
func (b *Block) Context() string { return b.ContextTag }

// LineNumber implements Element.
func (b *Block) LineNumber() int { return b.Line }

// Children implements Element.
func (b *Block) Children() []Element { return b.Elements }

// Source implements Element.
func (b *Block) Source() string { return b.SourceText }

// Converted implements Element.
func (b *Block) Converted() string { return b.ConvertedText }

// Title implements Element.
func (b *Block) Title() string { return b.TitleText }

// RawTitle implements Element.
func (b *Block) RawTitle() string { return b.RawTitleText }

// Style implements Element.
func (b *Block) Style() string { return b.StyleName }

// Attr implements Element.
func (b *Block) Attr(name string) string { return b.AttributeMap[name] }

// Level implements Element.
func (b *Block) Level() (int, bool) { return b.LevelValue, b.HasLevel }

// Rows implements Element.
func (b *Block) Rows() (head, body, foot [][]Cell) {
	return b.HeadRows, b.BodyRows, b.FootRows
}

// Pairs implements Element.
func (b *Block) Pairs() []DescriptionPair { return b.ItemPairs }

// TableCell is a plain-data Cell implementation.
type TableCell struct {
	Line         int
	SourceText   string
	RenderedText string
	StyleName    string
	Inner        Element
}

var _ Cell = (*TableCell)(nil)

// LineNumber implements Cell.
func (c *TableCell) LineNumber() int { return c.Line }

// Source implements Cell.
func (c *TableCell) Source() string { return c.SourceText }

// Text implements Cell.
func (c *TableCell) Text() string { return c.RenderedText }

// Style implements Cell.
func (c *TableCell) Style() string { return c.StyleName }

// InnerDocument implements Cell.
func (c *TableCell) InnerDocument() Element { return c.Inner }
