// Package buffer provides the editable text buffer used by the editor engine.
//
// A Buffer stores its content as a sequence of Unicode scalar values (runes),
// never raw bytes. Every position, length, and column reported by this package
// is measured in runes, so multi-byte characters occupy exactly one position.
//
// The buffer provides:
//
//   - Position-addressed mutation with InsertAt and RemoveAt
//   - Line queries (LineCount, Line, LineStart, LineLen) backed by a
//     line-start index that is maintained incrementally on every mutation
//   - Coordinate conversion between rune offsets and line/column points
//   - A revision counter that changes on every mutation
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("ab")
//
//	buf.InsertAt(1, 'X')   // "aXb"
//	buf.InsertAt(2, '\n')  // "aX\nb"
//	r := buf.RemoveAt(0)   // 'a', buffer is "X\nb"
//
//	buf.LineCount()        // 2
//	string(buf.Line(1))    // "b"
//
// Line Breaks:
//
// A line break is always exactly one '\n' rune. The buffer performs no
// carriage-return handling; callers that load text from disk are expected to
// strip or translate '\r' before constructing the buffer.
//
// Contract Violations:
//
// InsertAt and RemoveAt do not clamp. Passing a position outside the valid
// range is a programming error and panics with a *PositionError. Callers such
// as the cursor package check their own bounds before mutating.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. The editor session owns a single
// buffer and drives it from one goroutine.
package buffer
