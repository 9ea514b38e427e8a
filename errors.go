package jsonval

import (
	"errors"
	"fmt"
)

var (
	// ErrNotArray is returned when an array operation is applied to a
	// value of a different kind.
	ErrNotArray = errors.New("value is not an array")
)

// ErrIndexOutOfRange indicates an array index beyond the current element
// count.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

// ParseError indicates that stream content did not match the expected
// grammar. Offset is the byte position of the offending input.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Offset   int64
	Expected string
	Found    string
	cause    error
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("parse error at offset %d: expected %s", e.Offset, e.Expected)
	}
	return fmt.Sprintf("parse error at offset %d: expected %s, found %q", e.Offset, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error { return e.cause }
