package main

import (
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/lineio"
)

// Forth is one interpreter instance: a dictionary, a data stack, and a
// pending input queue, plus its io endpoints.  Instances share nothing.
type Forth struct {
	logging

	dict    dictionary
	stack   stack
	pending pending
	comp    *compiler

	in  *lineio.Input
	out flushio.WriteFlusher
}

// Close flushes output and closes any attached input streams.
func (f *Forth) Close() (err error) {
	if f.in != nil {
		if cerr := f.in.Close(); err == nil {
			err = cerr
		}
	}
	if f.out != nil {
		if ferr := f.out.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
