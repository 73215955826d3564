package asciidoc

import (
	"strings"

	"github.com/yaklabco/adocast/pkg/txtast"
)

// commentPrefix marks an AsciiDoc line comment. The processor folds such
// lines out of element sources, so locating an element's text must step
// over them in the original lines.
const commentPrefix = "//"

// findLocation scans the cursor window for the first position where the
// candidate lines occur contiguously in the source, and returns the located
// span. CodeBlock candidates match literally: lines that look like comments
// are part of the content and are never skipped.
//
// The second return value is false when the window is exhausted without a
// full match; the caller drops the element.
func (c *converter) findLocation(candidates []string, cur cursor, kind txtast.NodeType) (txtast.Span, bool) {
	if len(candidates) == 0 {
		return txtast.Span{}, false
	}

	start := cur.min
	if start < 1 {
		start = 1
	}

	for i := start; i+len(candidates)-1 <= cur.max; i++ {
		if span, ok := c.matchAt(candidates, i, cur.startColumn, kind); ok {
			return span, true
		}
	}

	return txtast.Span{}, false
}

// matchAt attempts to match every candidate line starting at source line i
// (1-based). A single offset counter advances past comment-only lines; it is
// re-checked before each candidate line and shared across the attempt, so a
// skip in the middle shifts every later line of the same attempt.
func (c *converter) matchAt(candidates []string, i, startColumn int, kind txtast.NodeType) (txtast.Span, bool) {
	var span txtast.Span

	offset := 0
	for j, candidate := range candidates {
		if kind != txtast.NodeCodeBlock {
			for {
				n := i + j + offset
				if n > len(c.lines) || !strings.HasPrefix(c.lines[n-1], commentPrefix) {
					break
				}
				offset++
			}
		}

		n := i + j + offset
		if n > len(c.lines) {
			return txtast.Span{}, false
		}
		line := c.lines[n-1]

		from := 0
		if j == 0 && startColumn > 0 {
			from = startColumn
		}
		if from > len(line) {
			return txtast.Span{}, false
		}

		col := strings.Index(line[from:], candidate)
		if col < 0 {
			return txtast.Span{}, false
		}
		col += from

		if j == 0 {
			span.Start = txtast.Position{Line: n, Column: col}
		}
		if j == len(candidates)-1 {
			span.End = txtast.Position{Line: n, Column: col + len(candidate)}
		}
	}

	return span, true
}
