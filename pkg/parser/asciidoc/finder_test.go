package asciidoc

import (
	"testing"

	"github.com/yaklabco/adocast/pkg/document"
	"github.com/yaklabco/adocast/pkg/txtast"
)

func newTestConverter(source string) *converter {
	return newConverter([]byte(source), options{})
}

func TestFindLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		source     string
		candidates []string
		cur        cursor
		kind       txtast.NodeType
		want       txtast.Span
		found      bool
	}{
		{
			name:       "single line match",
			source:     "hello world",
			candidates: []string{"world"},
			cur:        cursor{min: 1, max: 1, startColumn: -1},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 6},
				End:   txtast.Position{Line: 1, Column: 11},
			},
			found: true,
		},
		{
			name:       "multi line match",
			source:     "first\nsecond",
			candidates: []string{"first", "second"},
			cur:        cursor{min: 1, max: 2, startColumn: -1},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 0},
				End:   txtast.Position{Line: 2, Column: 6},
			},
			found: true,
		},
		{
			name:       "match skips to later line within window",
			source:     "other\ntarget",
			candidates: []string{"target"},
			cur:        cursor{min: 1, max: 2, startColumn: -1},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 2, Column: 0},
				End:   txtast.Position{Line: 2, Column: 6},
			},
			found: true,
		},
		{
			name:       "start column constrains first line",
			source:     "ab ab",
			candidates: []string{"ab"},
			cur:        cursor{min: 1, max: 1, startColumn: 3},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 3},
				End:   txtast.Position{Line: 1, Column: 5},
			},
			found: true,
		},
		{
			name:       "start column does not constrain later lines",
			source:     "x a\na",
			candidates: []string{"a", "a"},
			cur:        cursor{min: 1, max: 2, startColumn: 2},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 2},
				End:   txtast.Position{Line: 2, Column: 1},
			},
			found: true,
		},
		{
			name:       "comment line before match is skipped",
			source:     "// note\ntext",
			candidates: []string{"text"},
			cur:        cursor{min: 1, max: 1, startColumn: -1},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 2, Column: 0},
				End:   txtast.Position{Line: 2, Column: 4},
			},
			found: true,
		},
		{
			name:       "comment line between matched lines is skipped",
			source:     "alpha\n// gap\nbeta",
			candidates: []string{"alpha", "beta"},
			cur:        cursor{min: 1, max: 2, startColumn: -1},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 0},
				End:   txtast.Position{Line: 3, Column: 4},
			},
			found: true,
		},
		{
			name:       "code block matches comment lines verbatim",
			source:     "// c\nx = 1",
			candidates: []string{"// c", "x = 1"},
			cur:        cursor{min: 1, max: 1, startColumn: -1},
			kind:       txtast.NodeCodeBlock,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 0},
				End:   txtast.Position{Line: 2, Column: 5},
			},
			found: true,
		},
		{
			name:       "window exhausted",
			source:     "a\nb\nc",
			candidates: []string{"c"},
			cur:        cursor{min: 1, max: 2, startColumn: -1},
			kind:       txtast.NodeParagraph,
			found:      false,
		},
		{
			name:       "text absent",
			source:     "nothing here",
			candidates: []string{"missing"},
			cur:        cursor{min: 1, max: 1, startColumn: -1},
			kind:       txtast.NodeParagraph,
			found:      false,
		},
		{
			name:       "no candidates",
			source:     "text",
			candidates: nil,
			cur:        cursor{min: 1, max: 1, startColumn: -1},
			kind:       txtast.NodeParagraph,
			found:      false,
		},
		{
			name:       "min below one clamps to line one",
			source:     "text",
			candidates: []string{"text"},
			cur:        cursor{min: 0, max: 1, startColumn: -1},
			kind:       txtast.NodeParagraph,
			want: txtast.Span{
				Start: txtast.Position{Line: 1, Column: 0},
				End:   txtast.Position{Line: 1, Column: 4},
			},
			found: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestConverter(tt.source)
			got, found := c.findLocation(tt.candidates, tt.cur, tt.kind)

			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("span = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindLocation_SkipRunsPastSourceEnd(t *testing.T) {
	t.Parallel()

	// Every remaining line is a comment; the skip loop must stop at the
	// source boundary instead of indexing past it.
	c := newTestConverter("// one\n// two")
	_, found := c.findLocation([]string{"text"}, cursor{min: 1, max: 2, startColumn: -1}, txtast.NodeParagraph)
	if found {
		t.Error("expected no match in all-comment source")
	}
}

func TestCursor_Window(t *testing.T) {
	t.Parallel()

	siblings := []document.Element{
		&document.Block{ContextTag: document.ContextParagraph, Line: 2},
		&document.Block{ContextTag: document.ContextParagraph, Line: 5},
		&document.Block{ContextTag: document.ContextParagraph},
	}

	enclosing := cursor{min: 1, max: 9, startColumn: 4}

	first := enclosing.window(siblings, 0)
	if first.min != 2 || first.max != 5 {
		t.Errorf("first window = [%d,%d], want [2,5]", first.min, first.max)
	}
	if first.startColumn != -1 {
		t.Errorf("startColumn = %d, want -1; the column constraint must not carry", first.startColumn)
	}

	// Next sibling reports no line; max stays at the enclosing bound.
	second := enclosing.window(siblings, 1)
	if second.min != 5 || second.max != 9 {
		t.Errorf("second window = [%d,%d], want [5,9]", second.min, second.max)
	}

	// Element without a line keeps the enclosing min.
	third := enclosing.window(siblings, 2)
	if third.min != 1 || third.max != 9 {
		t.Errorf("third window = [%d,%d], want [1,9]", third.min, third.max)
	}
}
