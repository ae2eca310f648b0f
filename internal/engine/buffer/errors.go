package buffer

import (
	"errors"
	"fmt"
)

// Errors reported by buffer contract violations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrLineOutOfRange   = errors.New("line out of range")
)

// PositionError describes a position that violated a buffer precondition.
// It is the panic value raised by InsertAt, RemoveAt, RuneAt, and the line
// queries when handed a position the caller should never have produced.
type PositionError struct {
	Op  string // Operation name (e.g., "insert", "remove")
	Pos int    // Offending position or line number
	Len int    // Valid upper bound at the time of the call
	Err error  // ErrOffsetOutOfRange or ErrLineOutOfRange
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("buffer %s: position %d (limit %d): %v", e.Op, e.Pos, e.Len, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

func offsetPanic(op string, pos, limit int) {
	panic(&PositionError{Op: op, Pos: pos, Len: limit, Err: ErrOffsetOutOfRange})
}

func linePanic(op string, line, limit int) {
	panic(&PositionError{Op: op, Pos: line, Len: limit, Err: ErrLineOutOfRange})
}
