// Package txtast provides the position-annotated AST consumed by the host
// text-linting framework. It defines:
// - Node: the tree structure with parent/child/sibling relationships
// - Span / Range: line-column and absolute-offset views of a node's extent
// - Walk helpers for rule authors
package txtast

// NodeType classifies the type of an AST node.
type NodeType uint8

// Node types for the block and text elements of the target schema.
const (
	NodeDocument NodeType = iota
	NodeHeader
	NodeParagraph
	NodeList
	NodeListItem
	NodeBlockQuote
	NodeCodeBlock
	NodeTable
	NodeTableRow
	NodeTableCell
	NodeStr
)

var nodeTypeNames = [...]string{
	NodeDocument:   "Document",
	NodeHeader:     "Header",
	NodeParagraph:  "Paragraph",
	NodeList:       "List",
	NodeListItem:   "ListItem",
	NodeBlockQuote: "BlockQuote",
	NodeCodeBlock:  "CodeBlock",
	NodeTable:      "Table",
	NodeTableRow:   "TableRow",
	NodeTableCell:  "TableCell",
	NodeStr:        "Str",
}

// String returns the wire name of the node type ("Document", "Str", ...).
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Unknown"
}

// Node represents a single node in the AST.
// Nodes form a tree structure with parent/child/sibling relationships.
// Nodes are built bottom-up during one conversion and are not mutated
// afterwards, except for the optional attribute setters in attrs.go which
// are applied immediately after construction.
type Node struct {
	// Type identifies what kind of node this is.
	Type NodeType

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Loc is the textual span of this node. Lines are 1-based, columns are
	// 0-based byte indices within a line.
	Loc Span

	// Range is the absolute byte range of this node, derived from Loc via
	// the converter's source index. Range and Loc always describe the same
	// region.
	Range Range

	// Raw is the verbatim source substring spanned by this node. Aggregate
	// nodes (List, ListItem, Table, TableRow) carry "" because the upstream
	// processor supplies no literal text for them; consumers depend on the
	// emptiness, so it is deliberate, not derived from children.
	Raw string

	// Value is the normalized text content for Str and CodeBlock nodes.
	Value string

	// Attrs holds optional attributes (header depth, code language, block
	// title). Nil for nodes that carry none.
	Attrs *Attrs
}

// IsContainer returns true if this node's span derives from its children.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case NodeDocument, NodeList, NodeListItem, NodeBlockQuote, NodeTable,
		NodeTableRow:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}
