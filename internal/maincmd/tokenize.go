package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Tokenize is a development-only subcommand: it runs just the scanner and
// dumps every token, one per line, instead of evaluating the program.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, args...)
}

func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	toksByFile, errs := scanner.ScanFiles(ctx, files...)
	for _, toks := range toksByFile {
		for _, tv := range toks {
			fmt.Fprintf(stdio.Stdout, "[line %d] %s", tv.Value.Pos.Line(), tv.Token)
			if tv.Token.String() != tv.Value.Raw && tv.Value.Raw != "" {
				fmt.Fprintf(stdio.Stdout, " %s", tv.Value.Raw)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	for _, err := range errs {
		fmt.Fprintln(stdio.Stderr, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
