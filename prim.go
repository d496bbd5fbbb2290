package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// The builtins: each is a zero-argument side-effecting operation over the
// data stack (and, for a few, the dictionary or output).  Every one of them
// observes its operand count through stack.need before popping, so underflow
// is always a recoverable error.

// Symbol   Name        Function
//  dup     duplicate   copy the top of stack
func (f *Forth) dup() error {
	if err := f.stack.need(1); err != nil {
		return err
	}
	f.stack.push(f.stack[len(f.stack)-1])
	return nil
}

// Symbol   Name        Function
//  ?dup    maybe-dup   copy the top of stack only if it is nonzero
func (f *Forth) maybeDup() error {
	if err := f.stack.need(1); err != nil {
		return err
	}
	if top := f.stack[len(f.stack)-1]; top != 0 {
		f.stack.push(top)
	}
	return nil
}

// Symbol   Name        Function
//  drop    drop        discard the top of stack
func (f *Forth) drop() error {
	_, err := f.stack.pop()
	return err
}

// Symbol   Name        Function
//  swap    swap        exchange the top two values
func (f *Forth) swap() error {
	if err := f.stack.need(2); err != nil {
		return err
	}
	i := len(f.stack) - 2
	f.stack[i], f.stack[i+1] = f.stack[i+1], f.stack[i]
	return nil
}

// Symbol   Name        Function
//  over    over        copy the second value over the top
func (f *Forth) over() error {
	if err := f.stack.need(2); err != nil {
		return err
	}
	f.stack.push(f.stack[len(f.stack)-2])
	return nil
}

// Symbol   Name        Function
//  rot     rotate      rotate the third value to the top: a b c -- b c a
func (f *Forth) rot() error {
	if err := f.stack.need(3); err != nil {
		return err
	}
	i := len(f.stack) - 3
	f.stack[i], f.stack[i+1], f.stack[i+2] = f.stack[i+1], f.stack[i+2], f.stack[i]
	return nil
}

// Binary arithmetic: the second value is the left operand, the top the right;
// the result replaces both.
func (f *Forth) add() error { a, b, err := f.stack.pop2(); return f.binres(a+b, err) }
func (f *Forth) sub() error { a, b, err := f.stack.pop2(); return f.binres(a-b, err) }
func (f *Forth) mul() error { a, b, err := f.stack.pop2(); return f.binres(a*b, err) }

// div truncates like Go integer division; a zero divisor is an error.
func (f *Forth) div() error {
	a, b, err := f.stack.pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return errors.Wrapf(ErrDivideByZero, "%v /", a)
	}
	return f.binres(a/b, nil)
}

func (f *Forth) binres(val int, err error) error {
	if err != nil {
		return err
	}
	f.stack.push(val)
	return nil
}

// Symbol   Name        Function
//  .       print       pop the top of stack and print it
func (f *Forth) print() error {
	val, err := f.stack.pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(f.out, "%v ", val)
	return err
}

// Symbol   Name        Function
//  cr      newline     print a newline; no stack effect
func (f *Forth) cr() error {
	_, err := f.out.Write([]byte{'\n'})
	return err
}

// Symbol   Name        Function
//  .S      show stack  print the stack, bottom to top; no stack effect
func (f *Forth) printStack() error {
	return dumper{f: f, out: f.out}.dumpStack()
}

// Symbol   Name        Function
//  .D      show dict   print the dictionary; no stack effect
func (f *Forth) printDict() error {
	return dumper{f: f, out: f.out}.dumpDict()
}

// Symbol   Name        Function
//  bye     exit        request process exit, surfaced to the host
func (f *Forth) bye() error {
	return errors.WithStack(ExitError(0))
}

var builtins = []struct {
	name      string
	immediate bool
	fn        func(f *Forth) error
}{
	{"dup", false, (*Forth).dup},
	{"?dup", false, (*Forth).maybeDup},
	{"drop", false, (*Forth).drop},
	{"swap", false, (*Forth).swap},
	{"over", false, (*Forth).over},
	{"rot", false, (*Forth).rot},
	{"+", false, (*Forth).add},
	{"-", false, (*Forth).sub},
	{"*", false, (*Forth).mul},
	{"/", false, (*Forth).div},
	{".", false, (*Forth).print},
	{"cr", false, (*Forth).cr},
	{".S", false, (*Forth).printStack},
	{".D", false, (*Forth).printDict},
	{":", false, (*Forth).beginDefinition},
	{"bye", false, (*Forth).bye},
	{"\\", true, (*Forth).discardLine},
}

var builtinAliases = []struct {
	name, oldName string
}{
	{"plus", "+"},
	{".s", ".S"},
	{".d", ".D"},
	{"words", ".D"},
}

func (f *Forth) defineBuiltins() {
	for _, b := range builtins {
		f.dict.define(&word{name: b.name, immediate: b.immediate, kind: wordPrim, prim: b.fn})
	}
	for _, a := range builtinAliases {
		if err := f.dict.alias(a.name, a.oldName); err != nil {
			// aliases only name builtins defined just above
			panic(err)
		}
	}
}
