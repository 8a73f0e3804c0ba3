package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

type (
	// ExprStmt represents an expression evaluated purely for its side effects,
	// e.g. a call statement.
	ExprStmt struct {
		Expr Expr
	}

	// PrintStmt represents a `print` statement.
	PrintStmt struct {
		Print token.Pos
		Expr  Expr
	}

	// VarStmt represents a `var` declaration, with an optional initializer.
	VarStmt struct {
		Var     token.Pos
		Name    string
		NamePos token.Pos
		Init    Expr // may be nil
	}

	// BlockStmt represents a brace-delimited sequence of declarations. It
	// introduces a new lexical scope.
	BlockStmt struct {
		Lbrace token.Pos
		Stmts  []Stmt
		Rbrace token.Pos
	}

	// IfStmt represents an `if`/`else` statement. Else is nil when there is no
	// else branch.
	IfStmt struct {
		If   token.Pos
		Cond Expr
		Then Stmt
		Else Stmt
	}

	// WhileStmt represents a `while` statement. The parser also desugars `for`
	// loops into a WhileStmt wrapped in a BlockStmt, so there is no separate
	// ForStmt node.
	WhileStmt struct {
		While token.Pos
		Cond  Expr
		Body  Stmt
	}

	// ReturnStmt represents a `return` statement, with an optional value.
	ReturnStmt struct {
		Keyword token.Pos
		Value   Expr // may be nil
	}

	// FunctionStmt represents a function declaration, or a method inside a
	// class body (in which case Fun is the zero value, since methods omit the
	// leading `fun` keyword).
	FunctionStmt struct {
		Fun     token.Pos // zero if this is a method
		Name    string
		NamePos token.Pos
		Params  []*Param
		Body    []Stmt
		End     token.Pos // position of the closing '}'
	}

	// ClassStmt represents a class declaration, with an optional superclass
	// reference and zero or more method declarations.
	ClassStmt struct {
		Class      token.Pos
		Name       string
		NamePos    token.Pos
		Superclass *VariableExpr // may be nil
		Methods    []*FunctionStmt
		End        token.Pos // position of the closing '}'
	}
)

func (n *ExprStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExprStmt) Pos() token.Pos                { return n.Expr.Pos() }
func (n *ExprStmt) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *ExprStmt) stmt()                         {}

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *PrintStmt) Pos() token.Pos                { return n.Print }
func (n *PrintStmt) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *PrintStmt) stmt()                         {}

func (n *VarStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "var "+n.Name, map[string]int{"init": boolCount(n.Init != nil)})
}
func (n *VarStmt) Pos() token.Pos { return n.Var }
func (n *VarStmt) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
}
func (n *VarStmt) stmt() {}

func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *BlockStmt) Pos() token.Pos { return n.Lbrace }
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *BlockStmt) stmt() {}

func (n *IfStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "if", map[string]int{"else": boolCount(n.Else != nil)})
}
func (n *IfStmt) Pos() token.Pos { return n.If }
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfStmt) stmt() {}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileStmt) Pos() token.Pos                { return n.While }
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStmt) stmt() {}

func (n *ReturnStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "return", map[string]int{"value": boolCount(n.Value != nil)})
}
func (n *ReturnStmt) Pos() token.Pos { return n.Keyword }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStmt) stmt() {}

func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	lbl := "fn " + n.Name
	if n.Fun == token.NoPos {
		lbl = "method " + n.Name
	}
	format(f, verb, n, lbl, map[string]int{"params": len(n.Params)})
}
func (n *FunctionStmt) Pos() token.Pos { return n.NamePos }
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *FunctionStmt) stmt() {}

func (n *ClassStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "class "+n.Name, map[string]int{
		"superclass": boolCount(n.Superclass != nil),
		"methods":    len(n.Methods),
	})
}
func (n *ClassStmt) Pos() token.Pos { return n.Class }
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassStmt) stmt() {}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
