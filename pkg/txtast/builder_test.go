package txtast_test

import (
	"testing"

	"github.com/yaklabco/adocast/pkg/txtast"
)

func TestAppendChild(t *testing.T) {
	t.Parallel()

	parent := txtast.NewNode(txtast.NodeDocument)
	first := txtast.NewNode(txtast.NodeParagraph)
	second := txtast.NewNode(txtast.NodeParagraph)

	txtast.AppendChild(parent, first)
	txtast.AppendChild(parent, second)

	if parent.FirstChild != first {
		t.Error("FirstChild should be the first appended node")
	}
	if parent.LastChild != second {
		t.Error("LastChild should be the last appended node")
	}
	if first.Next != second || second.Prev != first {
		t.Error("sibling links not maintained")
	}
	if first.Parent != parent || second.Parent != parent {
		t.Error("parent links not maintained")
	}
}

func TestAppendChild_Reparents(t *testing.T) {
	t.Parallel()

	oldParent := txtast.NewNode(txtast.NodeDocument)
	newParent := txtast.NewNode(txtast.NodeDocument)
	child := txtast.NewNode(txtast.NodeParagraph)

	txtast.AppendChild(oldParent, child)
	txtast.AppendChild(newParent, child)

	if oldParent.HasChildren() {
		t.Error("old parent should have no children after reparenting")
	}
	if child.Parent != newParent {
		t.Error("child should belong to the new parent")
	}
}

func TestPrependChild(t *testing.T) {
	t.Parallel()

	parent := txtast.NewNode(txtast.NodeDocument)
	last := txtast.NewNode(txtast.NodeParagraph)
	first := txtast.NewNode(txtast.NodeHeader)

	txtast.AppendChild(parent, last)
	txtast.PrependChild(parent, first)

	if parent.FirstChild != first {
		t.Error("FirstChild should be the prepended node")
	}
	if first.Next != last || last.Prev != first {
		t.Error("sibling links not maintained")
	}
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()

	parent := txtast.NewNode(txtast.NodeDocument)
	first := txtast.NewNode(txtast.NodeParagraph)
	second := txtast.NewNode(txtast.NodeParagraph)
	third := txtast.NewNode(txtast.NodeParagraph)

	txtast.AppendChild(parent, first)
	txtast.AppendChild(parent, second)
	txtast.AppendChild(parent, third)

	txtast.RemoveChild(parent, second)

	if parent.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", parent.ChildCount())
	}
	if first.Next != third || third.Prev != first {
		t.Error("sibling links not rejoined after removal")
	}
	if second.Parent != nil || second.Prev != nil || second.Next != nil {
		t.Error("removed child should be fully detached")
	}

	// Removing a node that is not a child is a no-op.
	stranger := txtast.NewNode(txtast.NodeParagraph)
	txtast.RemoveChild(parent, stranger)
	if parent.ChildCount() != 2 {
		t.Error("removing a non-child should not modify the parent")
	}
}
