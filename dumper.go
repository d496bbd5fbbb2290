package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

// dumper renders interpreter state for the .S and .D diagnostics and for
// test failure dumps.
type dumper struct {
	f   *Forth
	out io.Writer
}

// dump writes a full state dump: stack, any open definition, dictionary.
func (dump dumper) dump() error {
	ew := &errWriter{w: dump.out}
	fmt.Fprintf(ew, "# Forth Dump\n")
	fmt.Fprintf(ew, "  stack: %v\n", dump.f.stack)
	if comp := dump.f.comp; comp != nil {
		fmt.Fprintf(ew, "  compiling: %q (%v words)\n", comp.name, len(comp.deferred))
	}
	fmt.Fprintf(ew, "  pending: %v\n", dump.f.pending.lines)
	if ew.err != nil {
		return ew.err
	}
	return dump.dumpDict()
}

// dumpStack prints the stack bottom-to-top, like "<3> 1 2 3".
func (dump dumper) dumpStack() error {
	ew := &errWriter{w: dump.out}
	fmt.Fprintf(ew, "<%v>", len(dump.f.stack))
	for _, val := range dump.f.stack {
		fmt.Fprintf(ew, " %v", val)
	}
	ew.Write([]byte{'\n'})
	return ew.err
}

// dumpDict prints every dictionary entry in name order, one definition per
// line, compiled bodies spelled out by the names captured at compile time.
func (dump dumper) dumpDict() error {
	names := make([]string, 0, len(dump.f.dict))
	for name := range dump.f.dict {
		names = append(names, name)
	}
	sort.Strings(names)

	ew := &errWriter{w: dump.out}
	for _, name := range names {
		dump.formatWord(ew, dump.f.dict[name], name)
	}
	return ew.err
}

func (dump dumper) formatWord(w io.Writer, entry *word, name string) {
	io.WriteString(w, ": ")
	io.WriteString(w, name)
	if entry.immediate {
		io.WriteString(w, " immediate")
	}
	switch entry.kind {
	case wordPrim:
		io.WriteString(w, " <builtin>")
	case wordLiteral:
		io.WriteString(w, " ")
		io.WriteString(w, strconv.Itoa(entry.lit))
	case wordCompiled:
		for _, sub := range entry.body {
			io.WriteString(w, " ")
			dump.formatRef(w, sub)
		}
	}
	io.WriteString(w, " ;\n")
}

func (dump dumper) formatRef(w io.Writer, sub *word) {
	if sub.kind == wordLiteral {
		io.WriteString(w, strconv.Itoa(sub.lit))
	} else if sub.name != "" {
		io.WriteString(w, sub.name)
	} else {
		io.WriteString(w, "ø")
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}
