package buffer

import "fmt"

// Point represents a line and column position.
// Both Line and Column are 0-indexed and measured in runes.
type Point struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed column (rune offset within line)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// RevisionID identifies a buffer revision.
// Each modification to the buffer produces a new revision.
type RevisionID uint64
