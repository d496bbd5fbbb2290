package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goforth/internal/logio"
)

type forthTestCases []forthTestCase

func (fts forthTestCases) run(t *testing.T) {
	for _, ft := range fts {
		if !t.Run(ft.name, ft.run) {
			return
		}
	}
}

func forthTest(name string) (ft forthTestCase) {
	ft.name = name
	return ft
}

type forthTestCase struct {
	name    string
	opts    []Option
	evals   []string
	useRun  bool
	timeout time.Duration
	wantErr error
	expect  []func(t *testing.T, f *Forth)
}

func (ft forthTestCase) withOptions(opts ...Option) forthTestCase {
	ft.opts = append(ft.opts, opts...)
	return ft
}

// withInput queues a named input source and drives the case through Run.
func (ft forthTestCase) withInput(input string) forthTestCase {
	ft.opts = append(ft.opts, WithInputName(ft.name+"/input", strings.NewReader(input)))
	ft.useRun = true
	return ft
}

// eval appends source chunks to feed through Eval, in order.
func (ft forthTestCase) eval(chunks ...string) forthTestCase {
	ft.evals = append(ft.evals, chunks...)
	return ft
}

func (ft forthTestCase) withTimeout(timeout time.Duration) forthTestCase {
	ft.timeout = timeout
	return ft
}

func (ft forthTestCase) expectError(err error) forthTestCase {
	ft.wantErr = err
	return ft
}

func (ft forthTestCase) expectUnknownWord(token string) forthTestCase {
	return ft.expectError(UnknownWordError{token})
}

func (ft forthTestCase) expectStack(values ...int) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, f *Forth) {
		if values == nil {
			values = []int{}
		}
		got := []int(f.stack)
		if got == nil {
			got = []int{}
		}
		assert.Equal(t, values, got, "expected stack values")
	})
	return ft
}

func (ft forthTestCase) expectOutput(output string) forthTestCase {
	var out strings.Builder
	ft.opts = append(ft.opts, WithOutput(&out))
	ft.expect = append(ft.expect, func(t *testing.T, f *Forth) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return ft
}

func (ft forthTestCase) expectCompiling(compiling bool) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, f *Forth) {
		assert.Equal(t, compiling, f.Compiling(), "expected compiling state")
	})
	return ft
}

func (ft forthTestCase) expectDefined(names ...string) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, f *Forth) {
		for _, name := range names {
			assert.NotNil(t, f.dict.lookup(name), "expected %q to be defined", name)
		}
	})
	return ft
}

func (ft forthTestCase) expectUndefined(names ...string) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, f *Forth) {
		for _, name := range names {
			assert.Nil(t, f.dict.lookup(name), "expected %q to not be defined", name)
		}
	})
	return ft
}

func (ft forthTestCase) run(t *testing.T) {
	f := New(ft.opts...)
	defer func() {
		if t.Failed() {
			ft.dumpToTest(t, f)
		}
	}()

	var err error
	for _, chunk := range ft.evals {
		if err = f.Eval(chunk); err != nil {
			break
		}
	}
	if err == nil && ft.useRun {
		timeout := ft.timeout
		if timeout == 0 {
			timeout = time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err = f.Run(ctx)
	}

	if ft.wantErr != nil {
		assert.True(t, errors.Is(err, ft.wantErr), "expected error: %v\ngot: %+v", ft.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}

	if !t.Failed() {
		for _, expect := range ft.expect {
			expect(t, f)
		}
	}
}

func (ft forthTestCase) dumpToTest(t *testing.T, f *Forth) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	dumper{f: f, out: &lw}.dump()
}

//// utilities for the hand-driven tests

func newTestForth(t *testing.T) (*Forth, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	return New(WithOutput(&out)), &out
}

func assertErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %+v", target, err)
	}
}
