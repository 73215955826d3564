package asciidoc

import "github.com/yaklabco/adocast/pkg/document"

// cursor is the inclusive line-number window within which the next element's
// text must be located, plus an optional column the first candidate line may
// not precede. Cursors are value objects: passed down and narrowed, never
// shared or mutated in place.
type cursor struct {
	min int
	max int

	// startColumn constrains the match column on the first candidate line
	// only. Negative means unconstrained.
	startColumn int
}

// window derives the cursor for the element at position i among siblings:
// min anchors to the element's own reported line number, max to the next
// sibling's, or the enclosing window's max for the last sibling. The column
// constraint does not carry across siblings.
func (cur cursor) window(siblings []document.Element, i int) cursor {
	next := cursor{min: cur.min, max: cur.max, startColumn: -1}

	if n := siblings[i].LineNumber(); n > 0 {
		next.min = n
	}
	if i+1 < len(siblings) {
		if n := siblings[i+1].LineNumber(); n > 0 {
			next.max = n
		}
	}

	return next
}
