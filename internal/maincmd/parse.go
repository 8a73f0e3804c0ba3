package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/mainer"
)

// Parse is a development-only subcommand: it runs the scanner and parser
// and dumps the resulting AST, instead of evaluating the program.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(ctx, stdio, args...)
}

func ParseFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
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
		if err := printer.Print(prog); err != nil {
			return err
		}
		for _, perr := range perrs {
			fmt.Fprintln(stdio.Stderr, perr)
			if firstErr == nil {
				firstErr = perr
			}
		}
	}
	return firstErr
}
