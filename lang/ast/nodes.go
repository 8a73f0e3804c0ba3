package ast

import (
	"fmt"
	"os"
	"strings"

	"github.com/mna/lox/lang/token"
)

// Program represents an entire parsed source file: a sequence of top-level
// declarations followed by EOF. It is the root of every AST produced by the
// parser.
type Program struct {
	// Name is the source name (e.g. the file path), which may be empty for a
	// REPL chunk.
	Name  string
	Stmts []Stmt
	EOF   token.Pos // position of the EOF marker, used when Stmts is empty
}

func (n *Program) Format(f fmt.State, verb rune) {
	lbl := "program"
	if n.Name != "" {
		lbl += " " + strings.ReplaceAll(n.Name, string(os.PathSeparator), "/")
	}
	format(f, verb, n, lbl, map[string]int{"stmts": len(n.Stmts)})
}
func (n *Program) Pos() token.Pos {
	if len(n.Stmts) > 0 {
		return n.Stmts[0].Pos()
	}
	return n.EOF
}
func (n *Program) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
