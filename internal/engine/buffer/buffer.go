package buffer

import (
	"slices"
	"sort"
)

// Buffer holds editable text as a sequence of runes.
// It is the only owner of the content; cursors and renderers read it
// through the query methods and mutate it through InsertAt and RemoveAt.
type Buffer struct {
	runes []rune

	// lineStarts[i] is the offset of the first rune of line i.
	// lineStarts[0] is always 0 and the slice is strictly increasing.
	lineStarts []int

	revision RevisionID
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		lineStarts: []int{0},
	}
}

// NewBufferFromString creates a buffer with initial content.
// Invalid UTF-8 sequences become U+FFFD, one rune per invalid byte.
func NewBufferFromString(s string) *Buffer {
	return NewBufferFromRunes([]rune(s))
}

// NewBufferFromRunes creates a buffer that owns a copy of rs.
func NewBufferFromRunes(rs []rune) *Buffer {
	b := &Buffer{
		runes: slices.Clone(rs),
	}
	b.lineStarts = computeLineStarts(b.runes)
	return b
}

// computeLineStarts scans runes and returns the start offset of every line.
func computeLineStarts(runes []rune) []int {
	starts := make([]int, 1, 16)
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Read Operations

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Revision returns the current revision. It changes on every mutation.
func (b *Buffer) Revision() RevisionID {
	return b.revision
}

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Runes returns a copy of the full buffer content.
func (b *Buffer) Runes() []rune {
	return slices.Clone(b.runes)
}

// RuneAt returns the rune at pos. pos must be in [0, Len()).
func (b *Buffer) RuneAt(pos int) rune {
	if pos < 0 || pos >= len(b.runes) {
		offsetPanic("rune at", pos, len(b.runes))
	}
	return b.runes[pos]
}

// LineCount returns the number of lines: the number of line breaks plus one.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// LineStart returns the offset of the first rune of the given line.
func (b *Buffer) LineStart(line int) int {
	if line < 0 || line >= len(b.lineStarts) {
		linePanic("line start", line, len(b.lineStarts))
	}
	return b.lineStarts[line]
}

// LineEnd returns the offset just past the last rune of the given line,
// which is the offset of its line break or Len() for the last line.
func (b *Buffer) LineEnd(line int) int {
	if line < 0 || line >= len(b.lineStarts) {
		linePanic("line end", line, len(b.lineStarts))
	}
	if line+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - 1
	}
	return len(b.runes)
}

// LineLen returns the length of a line in runes, excluding its line break.
func (b *Buffer) LineLen(line int) int {
	return b.LineEnd(line) - b.LineStart(line)
}

// Line returns a copy of the runes of the given line without its line break.
func (b *Buffer) Line(line int) []rune {
	return slices.Clone(b.runes[b.LineStart(line):b.LineEnd(line)])
}

// Coordinate Conversion

// LineAt returns the line containing offset. offset must be in [0, Len()].
func (b *Buffer) LineAt(offset int) int {
	if offset < 0 || offset > len(b.runes) {
		offsetPanic("line at", offset, len(b.runes))
	}
	// Largest i with lineStarts[i] <= offset.
	return sort.SearchInts(b.lineStarts, offset+1) - 1
}

// OffsetToPoint converts a rune offset to line/column.
func (b *Buffer) OffsetToPoint(offset int) Point {
	line := b.LineAt(offset)
	return Point{Line: line, Column: offset - b.lineStarts[line]}
}

// PointToOffset converts line/column to a rune offset.
// The line is clamped to the buffer and the column to the line length.
func (b *Buffer) PointToOffset(p Point) int {
	line := min(max(p.Line, 0), len(b.lineStarts)-1)
	col := min(max(p.Column, 0), b.LineLen(line))
	return b.lineStarts[line] + col
}

// Write Operations

// InsertAt inserts r immediately before position pos, shifting every rune at
// or after pos one position to the right. pos must be in [0, Len()].
func (b *Buffer) InsertAt(pos int, r rune) {
	if pos < 0 || pos > len(b.runes) {
		offsetPanic("insert", pos, len(b.runes))
	}

	b.runes = slices.Insert(b.runes, pos, r)

	// Lines that start after pos moved right by one. A line starting exactly
	// at pos keeps its start: the new rune becomes its first rune.
	i := sort.SearchInts(b.lineStarts, pos+1)
	for j := i; j < len(b.lineStarts); j++ {
		b.lineStarts[j]++
	}
	if r == '\n' {
		b.lineStarts = slices.Insert(b.lineStarts, i, pos+1)
	}

	b.revision++
}

// RemoveAt removes and returns the rune at pos, shifting every later rune one
// position to the left. pos must be in [0, Len()).
func (b *Buffer) RemoveAt(pos int) rune {
	if pos < 0 || pos >= len(b.runes) {
		offsetPanic("remove", pos, len(b.runes))
	}

	r := b.runes[pos]
	b.runes = slices.Delete(b.runes, pos, pos+1)

	i := sort.SearchInts(b.lineStarts, pos+1)
	if r == '\n' {
		// The line that started after this break merges into the previous one.
		b.lineStarts = slices.Delete(b.lineStarts, i, i+1)
	}
	for j := i; j < len(b.lineStarts); j++ {
		b.lineStarts[j]--
	}

	b.revision++
	return r
}
