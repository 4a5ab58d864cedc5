package coll

import "fmt"

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

type ErrCode uint64

const (
	ErrCIndexOutOfBounds     ErrCode = iota + 1 // 1: index or range outside the admissible set
	ErrCIllegalState                            // 2: iterator call without a preceding positioning call
	ErrCUnsupportedOperation                    // 3: mutator on a read-only or capability-limited container
	ErrCNoSuchElement                           // 4: nothing left to return
	ErrCIllegalArgument                         // 5: invalid construction or range arguments
)

func (c ErrCode) String() string {
	switch c {
	case ErrCIndexOutOfBounds:
		return "IndexOutOfBounds"
	case ErrCIllegalState:
		return "IllegalState"
	case ErrCUnsupportedOperation:
		return "UnsupportedOperation"
	case ErrCNoSuchElement:
		return "NoSuchElement"
	case ErrCIllegalArgument:
		return "IllegalArgument"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error wraps an error code and a message. Errors are never recovered inside this
// module; every one of them is a contract violation reported to the caller.
type Error struct {
	Code ErrCode // The error code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is matches any *Error with the same code when target carries no message,
// so errors.Is(err, coll.ErrNoSuchElement) works for every message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Msg == "" || t.Msg == e.Msg)
}

// Sentinels for errors.Is
var (
	ErrIndexOutOfBounds     = &Error{Code: ErrCIndexOutOfBounds}
	ErrIllegalState         = &Error{Code: ErrCIllegalState}
	ErrUnsupportedOperation = &Error{Code: ErrCUnsupportedOperation}
	ErrNoSuchElement        = &Error{Code: ErrCNoSuchElement}
	ErrIllegalArgument      = &Error{Code: ErrCIllegalArgument}
)

// NewError creates a new Error with the given code and message.
func NewError(code ErrCode, format string, args ...any) *Error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// IndexOutOfBounds reports an index that is not in the admissible set of a container of the given size.
func IndexOutOfBounds(index, size int) *Error {
	return NewError(ErrCIndexOutOfBounds, "index (%d) is out of bounds for size %d", index, size)
}

// RangeOutOfBounds reports a [from, to) range that does not fit a container of the given size.
func RangeOutOfBounds(from, to, size int) *Error {
	if from > to {
		return NewError(ErrCIndexOutOfBounds, "start index (%d) is greater than end index (%d)", from, to)
	}
	return NewError(ErrCIndexOutOfBounds, "range [%d, %d) is out of bounds for size %d", from, to, size)
}

// Unsupported reports a mutator that is not available on a container.
func Unsupported(op string) *Error {
	return NewError(ErrCUnsupportedOperation, "%s is not supported", op)
}

// NoSuchElement reports an exhausted iterator or an empty container.
func NoSuchElement(what string) *Error {
	return NewError(ErrCNoSuchElement, "%s", what)
}

// IllegalState reports an iterator mutation without a preceding positioning call.
func IllegalState(what string) *Error {
	return NewError(ErrCIllegalState, "%s", what)
}

// IllegalArgument reports invalid constructor or range arguments.
func IllegalArgument(format string, args ...any) *Error {
	return NewError(ErrCIllegalArgument, format, args...)
}

// --------------------------------------------------------------------------
// Guards
// --------------------------------------------------------------------------

// CheckIndex admits insertion points 0 <= i <= size.
func CheckIndex(i, size int) error {
	if i < 0 || i > size {
		return IndexOutOfBounds(i, size)
	}
	return nil
}

// CheckRestrictedIndex admits element positions 0 <= i < size.
func CheckRestrictedIndex(i, size int) error {
	if i < 0 || i >= size {
		return IndexOutOfBounds(i, size)
	}
	return nil
}

// CheckRange admits 0 <= from <= to <= size.
func CheckRange(from, to, size int) error {
	if from < 0 || from > to || to > size {
		return RangeOutOfBounds(from, to, size)
	}
	return nil
}
