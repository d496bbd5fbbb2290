package main

import "github.com/pkg/errors"

// The dictionary is a mapping from name to word.  Each word carries its name,
// an immediate flag, and an executable body.  Immediate words do something
// significant when referenced during compilation; ordinary words referenced
// during compilation are appended to the definition under construction.

type wordKind int

const (
	// wordPrim runs a builtin Go function.
	wordPrim wordKind = iota

	// wordLiteral pushes a constant; generated by resolve when a token is
	// not a known word.  Literal words are unnamed and never live in the
	// dictionary.
	wordLiteral

	// wordCompiled runs a recorded list of word references in order.
	wordCompiled
)

type word struct {
	name      string
	immediate bool
	kind      wordKind

	prim func(f *Forth) error // wordPrim
	lit  int                  // wordLiteral
	body []*word              // wordCompiled
}

func literal(val int) *word {
	return &word{kind: wordLiteral, lit: val}
}

// run executes the word's body against f, propagating the first failure and
// aborting the remainder of a compiled body.
func (w *word) run(f *Forth) error {
	switch w.kind {
	case wordPrim:
		return w.prim(f)

	case wordLiteral:
		f.stack.push(w.lit)
		return nil

	case wordCompiled:
		if f.logfn != nil {
			f.logf("call %q", w.name)
			defer f.withLogPrefix("	")()
		}
		for _, sub := range w.body {
			if err := sub.run(f); err != nil {
				return errors.WithMessagef(err, "in %q", w.name)
			}
		}
		return nil
	}
	return errors.Errorf("invalid word kind %v", w.kind)
}

type dictionary map[string]*word

// define inserts or replaces the entry for w.name.  Words already compiled
// against a prior entry keep their captured reference; only future lookups
// see the replacement.
func (d dictionary) define(w *word) {
	d[w.name] = w
}

// lookup returns the entry for name, or nil.  Matching is exact and case
// sensitive.
func (d dictionary) lookup(name string) *word {
	return d[name]
}

// alias defines newName as a copy of the entry for oldName, immediate flag
// and body included.  Aliasing an absent name is an UnknownWordError.
func (d dictionary) alias(newName, oldName string) error {
	w := d[oldName]
	if w == nil {
		return errors.WithStack(UnknownWordError{oldName})
	}
	cp := *w
	cp.name = newName
	d[newName] = &cp
	return nil
}
