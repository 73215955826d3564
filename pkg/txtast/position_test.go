package txtast_test

import (
	"testing"

	"github.com/yaklabco/adocast/pkg/txtast"
)

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pos  txtast.Position
		want bool
	}{
		{"first line first column", txtast.Position{Line: 1, Column: 0}, true},
		{"mid document", txtast.Position{Line: 42, Column: 7}, true},
		{"zero line", txtast.Position{Line: 0, Column: 0}, false},
		{"negative column", txtast.Position{Line: 1, Column: -1}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.pos.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()

	single := txtast.Span{
		Start: txtast.Position{Line: 3, Column: 0},
		End:   txtast.Position{Line: 3, Column: 12},
	}
	if !single.IsValid() {
		t.Error("span with valid endpoints should be valid")
	}
	if !single.IsSingleLine() {
		t.Error("span within one line should be single-line")
	}

	multi := txtast.Span{
		Start: txtast.Position{Line: 1, Column: 0},
		End:   txtast.Position{Line: 2, Column: 4},
	}
	if multi.IsSingleLine() {
		t.Error("span across lines should not be single-line")
	}

	var zero txtast.Span
	if zero.IsValid() {
		t.Error("zero span should be invalid")
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := txtast.Range{Start: 4, End: 9}

	if got := r.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if r.IsEmpty() {
		t.Error("non-empty range reported empty")
	}
	if !r.Contains(4) {
		t.Error("range should contain its start offset")
	}
	if r.Contains(9) {
		t.Error("range should not contain its end offset")
	}
	if r.Contains(3) {
		t.Error("range should not contain offsets before start")
	}

	empty := txtast.Range{Start: 2, End: 2}
	if !empty.IsEmpty() {
		t.Error("zero-length range should be empty")
	}
	if empty.Contains(2) {
		t.Error("empty range should contain nothing")
	}
}
