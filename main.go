package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const historyFile = ".goforth_history"

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var expr string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&expr, "e", "", "evaluate `expr` instead of reading input")
	flag.Parse()

	var opts = []Option{
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}

	var files []*os.File
	for _, name := range flag.Args() {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		files = append(files, file)
		opts = append(opts, WithInputName(name, file))
	}

	interactive := expr == "" && len(files) == 0 && term.IsTerminal(int(os.Stdin.Fd()))
	if expr == "" && len(files) == 0 && !interactive {
		opts = append(opts, WithInputName("<stdin>", os.Stdin))
	}

	f := New(opts...)
	defer f.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var err error
	if len(files) > 0 || (expr == "" && !interactive) {
		err = f.Run(ctx)
	}
	if err == nil && expr != "" {
		err = f.Eval(expr)
	}
	if err == nil && interactive {
		err = repl(ctx, f)
	}

	var code ExitError
	if errors.As(err, &code) {
		f.Close()
		os.Exit(int(code))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

// repl drives the interpreter from an interactive line editor, showing a
// continuation prompt while a colon definition is waiting on more input.
func repl(ctx context.Context, f *Forth) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if file, err := os.Open(histPath); err == nil {
			ln.ReadHistory(file)
			file.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if file, err := os.Create(histPath); err == nil {
			ln.WriteHistory(file)
			file.Close()
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := "ok> "
		if f.Compiling() {
			prompt = "... "
		}

		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			fmt.Println()
			return f.endOfInput()
		} else if err != nil {
			return err
		}

		if err := f.Eval(line); err != nil {
			var code ExitError
			if errors.As(err, &code) {
				return err
			}
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		ln.AppendHistory(line)
	}
}
