package asm

import (
	"fmt"

	"tlog.app/go/errors"
)

type (
	TooManyTokensError struct {
		N int
	}

	// IntegerError wraps the numeric conversion failure
	// of an '@', '$' or DEF payload.
	IntegerError struct {
		Err error
	}
)

var (
	ErrTooShort           = errors.New("statement is too short")
	ErrUnexpectedArgument = errors.New("expected no argument, found one")
	ErrArgumentNotFound   = errors.New("expected one argument, found none")
	ErrInvalidArgument    = errors.New("argument is invalid")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInlineLabel        = errors.New("forbidden inline label")
)

func (e TooManyTokensError) Error() string {
	return fmt.Sprintf("too many whitespace-separated tokens: expected at most 2, got %d", e.N)
}

func (e IntegerError) Error() string {
	return fmt.Sprintf("parse argument: %v", e.Err)
}

func (e IntegerError) Unwrap() error {
	return e.Err
}
