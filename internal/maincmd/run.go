package maincmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mna/lox/lang/evaluator"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// staticError wraps every scan, parse or resolve error reported for a run:
// the caller maps it to the "usage or static error" exit code, as opposed
// to a *evaluator.RuntimeError, which maps to the runtime-error exit code.
type staticError struct{ n int }

func (e *staticError) Error() string { return fmt.Sprintf("%d error(s)", e.n) }

// RunFile reads the named source file, parses, resolves and evaluates its
// entire contents in a fresh interpreter. Scan/parse/resolve errors are all
// printed and reported as a single *staticError; a runtime error is printed
// and returned as the *evaluator.RuntimeError that produced it.
func RunFile(ctx context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &staticError{n: 1}
	}

	prog, perrs := parser.Parse(src, path)
	if len(perrs) > 0 {
		for _, perr := range perrs {
			fmt.Fprintln(stdio.Stderr, perr)
		}
		return &staticError{n: len(perrs)}
	}

	if rerrs := resolver.Resolve(prog); len(rerrs) > 0 {
		for _, rerr := range rerrs {
			fmt.Fprintln(stdio.Stderr, rerr)
		}
		return &staticError{n: len(rerrs)}
	}

	it := evaluator.New()
	it.Stdout = stdio.Stdout
	if err := it.Run(prog); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}

// RunREPL reads one line at a time from stdio.Stdin, prompting with "> ",
// parsing and evaluating each line against a single interpreter whose
// global environment persists across lines. Static and runtime errors are
// printed but do not end the session; only EOF on the input does.
func RunREPL(ctx context.Context, stdio mainer.Stdio) error {
	it := evaluator.New()
	it.Stdout = stdio.Stdout

	in := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !in.Scan() {
			if err := in.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		line := in.Text()

		prog, perrs := parser.Parse([]byte(line), "")
		if len(perrs) > 0 {
			for _, perr := range perrs {
				fmt.Fprintln(stdio.Stderr, perr)
			}
			continue
		}
		if rerrs := resolver.Resolve(prog); len(rerrs) > 0 {
			for _, rerr := range rerrs {
				fmt.Fprintln(stdio.Stderr, rerr)
			}
			continue
		}
		if err := it.Run(prog); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
		}
	}
}
