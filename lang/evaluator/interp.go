// Package evaluator walks a resolved AST and executes it against a chain of
// lang/types.Environment scopes. It is the last stage of the pipeline:
// scanner, parser and resolver all run before any node reaches here.
package evaluator

import (
	"io"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/types"
)

// Interp holds the state shared across an entire run: the global
// environment (and the current one, which starts as the global and nests
// one level per block/call) and the writer that `print` targets.
type Interp struct {
	Globals *types.Environment
	Stdout  io.Writer

	env *types.Environment
}

// New returns an interpreter with a fresh global scope seeded with the
// standard built-ins (currently just clock), printing to os.Stdout.
func New() *Interp {
	g := types.NewGlobal()
	it := &Interp{Globals: g, Stdout: os.Stdout, env: g}
	defineNatives(g)
	return it
}

// returnSignal implements error so it can be threaded back up through the
// ordinary (error) return value of every statement-executing function; the
// function-call boundary is the only place that catches it.
type returnSignal struct {
	value types.Value
}

func (r *returnSignal) Error() string { return "lox: return outside of a function call" }

// Run executes every top-level statement of prog in the interpreter's
// global environment. prog must already be resolved with no errors.
func (it *Interp) Run(prog *ast.Program) error {
	for _, stmt := range prog.Stmts {
		if err := it.execStmt(stmt); err != nil {
			if _, ok := err.(*returnSignal); ok {
				// A resolved program never lets a bare return reach here (the
				// resolver rejects return outside a function), but guard anyway
				// rather than surface the sentinel as a user-facing error.
				return nil
			}
			return err
		}
	}
	return nil
}
