package main

import "github.com/pkg/errors"

// A colon definition is compiled by an explicit two-list split: immediate
// words execute now, at compile time, while ordinary words are appended to
// the deferred body that becomes the new word.  The compiler is token-fed so
// that a definition can span Eval calls; it lives on the instance until ";"
// seals it or an error aborts it.
type compiler struct {
	name     string
	started  bool
	deferred []*word
}

// beginDefinition is the body of ":".
func (f *Forth) beginDefinition() error {
	if f.comp != nil {
		return errors.WithMessage(ErrMalformedDefinition, "nested definition")
	}
	f.comp = &compiler{}
	return nil
}

// compileToken feeds one token to the in-progress definition.  Any error
// aborts the whole definition; no partial word is ever registered.
func (f *Forth) compileToken(token string) error {
	comp := f.comp

	if !comp.started {
		comp.name, comp.started = token, true
		f.logf("define %q", token)
		return nil
	}

	if token == ";" {
		w := &word{name: comp.name, kind: wordCompiled, body: comp.deferred}
		f.dict.define(w)
		f.comp = nil
		f.logf("defined %q (%v words)", w.name, len(w.body))
		return nil
	}

	w := f.resolve(token)
	if w == nil {
		f.comp = nil
		return errors.WithMessagef(errors.WithStack(UnknownWordError{token}),
			"compiling %q", comp.name)
	}

	if w.immediate {
		f.logf("compile-time %q", token)
		if err := w.run(f); err != nil {
			f.comp = nil
			return errors.WithMessagef(err, "compiling %q", comp.name)
		}
		return nil
	}

	comp.deferred = append(comp.deferred, w)
	return nil
}

// endOfInput reports what it means for input to run dry: fatal if a
// definition is still open.
func (f *Forth) endOfInput() error {
	comp := f.comp
	if comp == nil {
		return nil
	}
	f.comp = nil
	if !comp.started {
		return errors.WithMessage(ErrMalformedDefinition, "definition missing name")
	}
	return errors.WithMessagef(ErrMalformedDefinition,
		"input ended inside definition of %q", comp.name)
}
