package syntax

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every Error.
var ErrSyntax = errors.New("syntax error")

// Error is a scan or parse error at a position in the input.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrSyntax, e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrSyntax
}

func errorf(pos Pos, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
