package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/adocast/pkg/txtast"
)

const defaultWidth = 100

// TreeRenderer writes an indented, optionally styled view of an AST.
type TreeRenderer struct {
	styles *Styles
	width  int
}

// NewTreeRenderer creates a renderer writing to the given writer's width.
func NewTreeRenderer(colorMode string, writer io.Writer) *TreeRenderer {
	return &TreeRenderer{
		styles: NewStyles(IsColorEnabled(colorMode, writer)),
		width:  terminalWidth(writer, defaultWidth),
	}
}

// Render writes the tree rooted at node.
func (r *TreeRenderer) Render(writer io.Writer, root *txtast.Node) error {
	return r.renderNode(writer, root, 0)
}

func (r *TreeRenderer) renderNode(writer io.Writer, node *txtast.Node, depth int) error {
	indent := strings.Repeat("  ", depth)

	line := indent + r.styles.NodeType.Render(node.Type.String()) +
		" " + r.styles.Location.Render(formatSpan(node)) +
		r.attributes(node)

	if node.Value != "" {
		line += " " + r.styles.Value.Render(strconv.Quote(truncate(node.Value, r.width/2)))
	}

	if _, err := fmt.Fprintln(writer, line); err != nil {
		return err
	}

	for child := node.FirstChild; child != nil; child = child.Next {
		if err := r.renderNode(writer, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (r *TreeRenderer) attributes(node *txtast.Node) string {
	if node.Attrs == nil {
		return ""
	}

	var parts []string
	if node.Attrs.Depth > 0 {
		parts = append(parts, "depth="+strconv.Itoa(node.Attrs.Depth))
	}
	if node.Attrs.Lang != "" {
		parts = append(parts, "lang="+node.Attrs.Lang)
	}
	if node.Attrs.Title != "" {
		parts = append(parts, "title="+strconv.Quote(node.Attrs.Title))
	}
	if len(parts) == 0 {
		return ""
	}

	return " " + r.styles.Attribute.Render(strings.Join(parts, " "))
}

func formatSpan(node *txtast.Node) string {
	return fmt.Sprintf("%d:%d-%d:%d [%d,%d)",
		node.Loc.Start.Line, node.Loc.Start.Column,
		node.Loc.End.Line, node.Loc.End.Column,
		node.Range.Start, node.Range.End)
}

func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
