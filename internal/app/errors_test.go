package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "open", Target: "/path/file.txt"},
			expected: "open /path/file.txt",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "open", Target: "/path/file.txt", Context: "read failed", Err: errors.New("io error")},
			expected: "open /path/file.txt (read failed): io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("save", "", ErrNoFilePath)
	if !errors.Is(err, ErrNoFilePath) {
		t.Error("expected errors.Is to match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match itself")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("unexpected match")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Unwrap() != nil {
		t.Error("nil receiver should stay nil")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	cause := errors.New("cursor drifted")
	err := NewRecoveredPanicError(cause, "stack")

	if !errors.Is(err, cause) {
		t.Error("expected panic value to unwrap")
	}
	if err.Error() != "panic: cursor drifted\nstack" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if NewRecoveredPanicError("boom", "").Unwrap() != nil {
		t.Error("non-error panic value should not unwrap")
	}
}
