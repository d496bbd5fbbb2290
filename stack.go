package main

import "github.com/pkg/errors"

// stack is the integer data stack used implicitly by most primitives.  It
// grows without bound; underflow is a recoverable error, checked through need
// before any primitive touches its operands.
type stack []int

func (s *stack) push(vals ...int) {
	*s = append(*s, vals...)
}

// need errors unless the stack holds at least n values.
func (s stack) need(n int) error {
	if len(s) < n {
		return errors.Wrapf(ErrEmptyStack, "need %v operands, have %v", n, len(s))
	}
	return nil
}

func (s *stack) pop() (int, error) {
	if err := s.need(1); err != nil {
		return 0, err
	}
	i := len(*s) - 1
	val := (*s)[i]
	*s = (*s)[:i]
	return val, nil
}

// pop2 removes the top two values; b was on top, a below it.
func (s *stack) pop2() (a, b int, err error) {
	if err := s.need(2); err != nil {
		return 0, 0, err
	}
	i := len(*s) - 2
	a, b = (*s)[i], (*s)[i+1]
	*s = (*s)[:i]
	return a, b, nil
}
