package main

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/jcorbin/goforth/internal/lineio"
	"github.com/jcorbin/goforth/internal/panicerr"
)

// New creates an interpreter instance with the builtin words and their
// aliases pre-registered.
func New(opts ...Option) *Forth {
	f := &Forth{dict: make(dictionary)}
	defaultOptions.apply(f)
	if opt := Options(opts...); opt != nil {
		opt.apply(f)
	}
	f.defineBuiltins()
	return f
}

// Eval feeds one chunk of source text to the interpreter.  Pending input and
// any open colon definition persist across calls; the first error aborts the
// call and is returned.
func (f *Forth) Eval(text string) error {
	err := panicerr.Recover("Eval", func() error {
		return f.eval(text)
	})
	if ferr := f.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Run drains the attached input streams until end of input, cancellation, or
// failure.  End of input with a definition still open is an
// ErrMalformedDefinition; an ExitError from "bye" passes through unwrapped.
func (f *Forth) Run(ctx context.Context) error {
	err := panicerr.Recover("Run", func() error {
		return f.run(ctx)
	})
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Compiling reports whether a colon definition is waiting on further input,
// letting an interactive host show a continuation prompt.
func (f *Forth) Compiling() bool { return f.comp != nil }

// WithInput queues an input stream for Run (and for "\" line discards).
func WithInput(r io.Reader) Option { return withInput(r) }

// WithInputName is WithInput with a name attached for location reporting.
func WithInputName(name string, r io.Reader) Option {
	return withInput(lineio.NamedReader(name, r))
}

// WithOutput sets the output sink written by ".", "cr", ".S" and ".D".
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee copies output to an additional sink.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithLogf enables trace logging through the given printf-like function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
