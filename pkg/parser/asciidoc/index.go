package asciidoc

import "github.com/yaklabco/adocast/pkg/txtast"

// SourceIndex maps line/column positions to absolute character offsets.
// Entry i holds the offset of the start of line i+1; a final sentinel entry
// holds the total source length. Built once per conversion and immutable
// thereafter.
type SourceIndex []int

// NewSourceIndex builds the index from source lines (split on "\n").
// Each prior line contributes its length plus one for the newline separator.
func NewSourceIndex(lines []string) SourceIndex {
	index := make(SourceIndex, len(lines)+1)

	total := 0
	for i, line := range lines {
		index[i] = total
		total += len(line) + 1
	}

	// The last line has no trailing separator.
	index[len(lines)] = total - 1

	return index
}

// PositionToIndex returns the absolute character offset of a position.
// A position referencing a nonexistent line is undefined behavior; callers
// guarantee validity.
func (idx SourceIndex) PositionToIndex(pos txtast.Position) int {
	return idx[pos.Line-1] + pos.Column
}
