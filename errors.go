package main

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyStack reports a word observing fewer operands than it needs.
	ErrEmptyStack = errors.New("empty stack")

	// ErrDivideByZero reports integer division with a zero right operand.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrMalformedDefinition reports a colon definition missing its name or
	// its terminating ";" at end of input.
	ErrMalformedDefinition = errors.New("malformed definition")
)

// UnknownWordError reports a token that resolves to neither a dictionary
// entry nor an integer literal.
type UnknownWordError struct {
	Word string
}

func (err UnknownWordError) Error() string { return fmt.Sprintf("unknown word %q", err.Word) }

// ExitError carries a process exit request, raised by "bye", up through Eval
// and Run so that the host decides whether to actually terminate.
type ExitError int

func (code ExitError) Error() string { return fmt.Sprintf("exit status %v", int(code)) }
