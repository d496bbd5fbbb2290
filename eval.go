package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// eval tokenizes one chunk of source text onto the pending queue and drains
// it.  Pending tokens from earlier calls are drained first; a definition left
// open by an earlier call picks up where it stopped.
func (f *Forth) eval(text string) error {
	f.pending.add(tokenize(text))
	return f.drain()
}

// drain consumes pending tokens in strict left-to-right order.  The first
// failure aborts the call: remaining pending tokens are discarded and any
// in-progress definition is thrown away, so the next call starts clean.
// Stack effects already applied are not rolled back.
func (f *Forth) drain() error {
	for {
		token, ok := f.pending.next()
		if !ok {
			return nil
		}
		if err := f.evalToken(token); err != nil {
			f.pending.clear()
			f.comp = nil
			return err
		}
	}
}

// evalToken dispatches one token: to the compiler while a definition is open,
// otherwise resolved and executed immediately.  Immediacy has no special
// meaning here; it only matters inside the compiler.
func (f *Forth) evalToken(token string) error {
	if f.comp != nil {
		return f.compileToken(token)
	}
	w := f.resolve(token)
	if w == nil {
		return errors.WithStack(UnknownWordError{token})
	}
	f.logf("eval %q", token)
	return w.run(f)
}

// run drains the attached line reader until end of input or failure,
// evaluating line by line and honoring context cancellation between lines.
func (f *Forth) run(ctx context.Context) error {
	if f.in == nil {
		return errors.New("no input attached")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := f.in.ReadLine()
		if err == io.EOF {
			return f.endOfInput()
		} else if err != nil {
			return errors.WithMessagef(err, "reading %v", f.in.Last)
		}
		if err := f.eval(line); err != nil {
			return errors.WithMessagef(err, "at %v", f.in.Last)
		}
		if err := f.out.Flush(); err != nil {
			return err
		}
	}
}

// discardLine is the body of "\": it drops the unconsumed remainder of the
// current input line, falling back to reading and discarding one raw line
// from the attached line reader when no line is pending.
func (f *Forth) discardLine() error {
	if f.pending.dropLine() {
		return nil
	}
	if f.in != nil {
		if _, err := f.in.ReadLine(); err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}
