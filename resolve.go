package main

import "strconv"

// resolve produces the executable word for a token: a dictionary entry if one
// exists, else a synthesized literal if the whole token parses as a base-10
// signed integer, else nil.  Dictionary entries take precedence, so a word
// literally named "42" would shadow the literal.
func (f *Forth) resolve(token string) *word {
	if w := f.dict.lookup(token); w != nil {
		return w
	}
	if n, err := strconv.ParseInt(token, 10, strconv.IntSize); err == nil {
		return literal(int(n))
	}
	return nil
}
