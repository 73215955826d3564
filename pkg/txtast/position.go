package txtast

// Position is a point in the source text. Line is 1-based; Column is a
// 0-based byte index within the line.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has a valid line number.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column >= 0
}

// Span is a half-open textual region between two positions.
type Span struct {
	Start Position
	End   Position
}

// IsValid returns true if both endpoints are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// IsSingleLine returns true if the span starts and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Range is an absolute byte range [Start, End) in the source text.
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}
