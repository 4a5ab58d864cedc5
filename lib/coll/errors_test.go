package coll

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := IndexOutOfBounds(5, 5)

	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Expected %v to match ErrIndexOutOfBounds", err)
	}
	if errors.Is(err, ErrNoSuchElement) {
		t.Errorf("Expected %v not to match ErrNoSuchElement", err)
	}

	wrapped := fmt.Errorf("get: %w", err)
	if !errors.Is(wrapped, ErrIndexOutOfBounds) {
		t.Errorf("Expected wrapped error to match ErrIndexOutOfBounds")
	}

	// a target with a message only matches the same message
	if errors.Is(err, NewError(ErrCIndexOutOfBounds, "other")) {
		t.Errorf("Expected messages to be compared when the target has one")
	}
	if !errors.Is(err, IndexOutOfBounds(5, 5)) {
		t.Errorf("Expected equal errors to match")
	}

	var e *Error
	if !errors.As(wrapped, &e) || e.Code != ErrCIndexOutOfBounds {
		t.Errorf("Expected errors.As to extract the code, got %v", e)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want []string
	}{
		{IndexOutOfBounds(5, 5), []string{"IndexOutOfBounds", "(5)", "size 5"}},
		{RangeOutOfBounds(3, 1, 5), []string{"start index (3)", "end index (1)"}},
		{RangeOutOfBounds(1, 7, 5), []string{"[1, 7)", "size 5"}},
		{Unsupported("Put"), []string{"UnsupportedOperation", "Put is not supported"}},
		{NoSuchElement("empty list"), []string{"NoSuchElement", "empty list"}},
		{IllegalState("no current element"), []string{"IllegalState"}},
		{IllegalArgument("from (%d) > to (%d)", 2, 1), []string{"IllegalArgument", "from (2) > to (1)"}},
		{ErrNoSuchElement, []string{"NoSuchElement"}},
	}

	for _, tc := range tests {
		msg := tc.err.Error()
		for _, want := range tc.want {
			if !strings.Contains(msg, want) {
				t.Errorf("Expected %q to contain %q", msg, want)
			}
		}
	}

	if ErrCode(99).String() != "Unknown" {
		t.Errorf("Expected unknown codes to render as Unknown")
	}
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name string
		err  error
		ok   bool
	}{
		{"index 0 of empty", CheckIndex(0, 0), true},
		{"index size", CheckIndex(3, 3), true},
		{"index past size", CheckIndex(4, 3), false},
		{"negative index", CheckIndex(-1, 3), false},
		{"restricted last", CheckRestrictedIndex(2, 3), true},
		{"restricted size", CheckRestrictedIndex(3, 3), false},
		{"restricted empty", CheckRestrictedIndex(0, 0), false},
		{"empty range", CheckRange(2, 2, 3), true},
		{"full range", CheckRange(0, 3, 3), true},
		{"inverted range", CheckRange(2, 1, 3), false},
		{"range past size", CheckRange(0, 4, 3), false},
		{"negative range", CheckRange(-1, 1, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.ok && tc.err != nil {
				t.Errorf("Expected no error, got %v", tc.err)
			}
			if !tc.ok && !errors.Is(tc.err, ErrIndexOutOfBounds) {
				t.Errorf("Expected ErrIndexOutOfBounds, got %v", tc.err)
			}
		})
	}
}
