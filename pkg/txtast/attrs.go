package txtast

// Attrs holds the optional attributes a node may carry.
type Attrs struct {
	// Depth is the header nesting level. 1 is the document title.
	Depth int

	// Lang is the code block language tag ("" when the source named none).
	Lang string

	// Title is the block title text.
	Title string
}

// Depth returns the header depth, or 0 when the node carries none.
func (n *Node) Depth() int {
	if n.Attrs == nil {
		return 0
	}
	return n.Attrs.Depth
}

// Lang returns the code language tag, or "" when the node carries none.
func (n *Node) Lang() string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs.Lang
}

// Title returns the block title, or "" when the node carries none.
func (n *Node) Title() string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs.Title
}

// SetDepth attaches a header depth, allocating Attrs on first use.
func (n *Node) SetDepth(depth int) {
	n.ensureAttrs().Depth = depth
}

// SetLang attaches a code language tag, allocating Attrs on first use.
func (n *Node) SetLang(lang string) {
	n.ensureAttrs().Lang = lang
}

// SetTitle attaches a block title, allocating Attrs on first use.
func (n *Node) SetTitle(title string) {
	n.ensureAttrs().Title = title
}

func (n *Node) ensureAttrs() *Attrs {
	if n.Attrs == nil {
		n.Attrs = &Attrs{}
	}
	return n.Attrs
}
