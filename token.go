package main

import "strings"

// tokenize splits raw input text into lines of whitespace-delimited tokens.
// Tokens are opaque and case sensitive; order is preserved.  Line grouping is
// kept so that "\" can discard the remainder of its line precisely.
func tokenize(text string) [][]string {
	raw := strings.Split(text, "\n")
	lines := make([][]string, 0, len(raw))
	for _, line := range raw {
		if toks := strings.Fields(line); len(toks) > 0 {
			lines = append(lines, toks)
		}
	}
	return lines
}

// pending is the FIFO queue of not-yet-consumed tokens, shared across Eval
// calls.  The head line stays in place, possibly empty, until the next token
// is taken past it, so that dropLine never reaches beyond the line whose
// tokens are currently being consumed.
type pending struct {
	lines [][]string
}

func (p *pending) add(lines [][]string) {
	p.lines = append(p.lines, lines...)
}

// next removes and returns the next token in order.
func (p *pending) next() (string, bool) {
	for len(p.lines) > 0 {
		line := p.lines[0]
		if len(line) == 0 {
			p.lines = p.lines[1:]
			continue
		}
		p.lines[0] = line[1:]
		return line[0], true
	}
	return "", false
}

// dropLine discards the unconsumed remainder of the current line, reporting
// whether there was a current line at all.
func (p *pending) dropLine() bool {
	if len(p.lines) == 0 {
		return false
	}
	p.lines = p.lines[1:]
	return true
}

func (p *pending) empty() bool {
	for _, line := range p.lines {
		if len(line) > 0 {
			return false
		}
	}
	return true
}

func (p *pending) clear() {
	p.lines = nil
}
