package main

import (
	"io"

	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/lineio"
)

// Option configures a Forth instance under construction.
type Option interface{ apply(f *Forth) }

var defaultOptions = Options(
	withOutput(io.Discard),
)

// Options combines zero or more options into one, eliding nils.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		if many, ok := opt.(options); ok {
			res = append(res, many...)
		} else if opt != nil {
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type options []Option

func (opts options) apply(f *Forth) {
	for _, opt := range opts {
		opt.apply(f)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(f *Forth) {
	f.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

// input options queue; each adds another source after any prior ones.
func (i inputOption) apply(f *Forth) {
	if f.in == nil {
		f.in = &lineio.Input{}
	}
	f.in.Push(i.Reader)
}

func (o outputOption) apply(f *Forth) {
	if f.out != nil {
		f.out.Flush()
	}
	f.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(f *Forth) {
	f.out = flushio.Multi(f.out, flushio.NewWriteFlusher(o.Writer))
}
