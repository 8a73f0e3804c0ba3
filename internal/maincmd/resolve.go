package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// Resolve is a development-only subcommand: it runs the scanner, parser and
// resolver, dumps the resulting AST and reports any resolve errors, instead
// of evaluating the program. The dump uses the same node labels as parse;
// the scope depths recorded by the resolver are not printed.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(ctx, stdio, args...)
}

func ResolveFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout, ShowPos: true}

	var firstErr error
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		prog, perrs := parser.Parse(src, file)
		if len(perrs) > 0 {
			for _, perr := range perrs {
				fmt.Fprintln(stdio.Stderr, perr)
			}
			if firstErr == nil {
				firstErr = perrs[0]
			}
			continue
		}

		rerrs := resolver.Resolve(prog)
		if err := printer.Print(prog); err != nil {
			return err
		}
		for _, rerr := range rerrs {
			fmt.Fprintln(stdio.Stderr, rerr)
			if firstErr == nil {
				firstErr = rerr
			}
		}
	}
	return firstErr
}
