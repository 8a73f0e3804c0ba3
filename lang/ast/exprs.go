package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// Param represents a single function or method parameter name.
type Param struct {
	Name string
	Pos  token.Pos
}

type (
	// LiteralExpr represents a literal nil, boolean, number or string. The
	// scanner has already materialized the value; Kind tells which field to
	// read (Num for NUMBER, Str for STRING, neither for NIL/TRUE/FALSE).
	LiteralExpr struct {
		Start token.Pos
		Kind  token.Token // NIL, TRUE, FALSE, STRING or NUMBER
		Raw   string      // uninterpreted source text, for dumps
		Str   string
		Num   float64
	}

	// VariableExpr represents a reference to a variable by name. Depth is
	// filled in by the resolver; HasDepth is false when the name resolves to
	// the global scope.
	VariableExpr struct {
		Name     string
		NamePos  token.Pos
		Depth    int
		HasDepth bool
	}

	// AssignExpr represents an assignment to a variable, e.g. x = y.
	AssignExpr struct {
		Name     string
		NamePos  token.Pos
		Value    Expr
		Depth    int
		HasDepth bool
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		Lparen token.Pos
		Expr   Expr
		Rparen token.Pos
	}

	// UnaryExpr represents a unary operator expression, e.g. -x or !x.
	UnaryExpr struct {
		Op    token.Token // MINUS or BANG
		OpPos token.Pos
		Right Expr
	}

	// BinaryExpr represents a binary arithmetic/comparison/equality
	// expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// LogicalExpr represents a short-circuiting "and"/"or" expression.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token // AND or OR
		OpPos token.Pos
		Right Expr
	}

	// CallExpr represents a function or method call, e.g. f(a, b).
	CallExpr struct {
		Callee Expr
		Paren  token.Pos // position of the closing ')', for error reporting
		Args   []Expr
	}

	// GetExpr represents a property access, e.g. x.y.
	GetExpr struct {
		Object  Expr
		Name    string
		NamePos token.Pos
	}

	// SetExpr represents a property assignment, e.g. x.y = z.
	SetExpr struct {
		Object  Expr
		Name    string
		NamePos token.Pos
		Value   Expr
	}

	// ThisExpr represents the `this` pseudo-variable inside a method.
	ThisExpr struct {
		Keyword  token.Pos
		Depth    int
		HasDepth bool
	}

	// SuperExpr represents a `super.method` expression.
	SuperExpr struct {
		Keyword   token.Pos
		Method    string
		MethodPos token.Pos
		Depth     int
		HasDepth  bool
	}
)

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Kind.String()+" "+n.Raw, nil)
}
func (n *LiteralExpr) Pos() token.Pos { return n.Start }
func (n *LiteralExpr) Walk(v Visitor) {}
func (n *LiteralExpr) expr()          {}

func (n *VariableExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name, nil) }
func (n *VariableExpr) Pos() token.Pos                { return n.NamePos }
func (n *VariableExpr) Walk(v Visitor)                {}
func (n *VariableExpr) expr()                         {}

func (n *AssignExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name+" = ", nil) }
func (n *AssignExpr) Pos() token.Pos                { return n.NamePos }
func (n *AssignExpr) Walk(v Visitor)                { Walk(v, n.Value) }
func (n *AssignExpr) expr()                         {}

func (n *GroupingExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "(expr)", nil) }
func (n *GroupingExpr) Pos() token.Pos                { return n.Lparen }
func (n *GroupingExpr) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *GroupingExpr) expr()                         {}

func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Op.GoString(), nil)
}
func (n *UnaryExpr) Pos() token.Pos { return n.OpPos }
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }
func (n *UnaryExpr) expr()          {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Op.GoString(), nil)
}
func (n *BinaryExpr) Pos() token.Pos { return n.OpPos }
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) expr() {}

func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.GoString(), nil)
}
func (n *LogicalExpr) Pos() token.Pos { return n.OpPos }
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) expr() {}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Pos() token.Pos { return n.Paren }
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) expr() {}

func (n *GetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Name, nil) }
func (n *GetExpr) Pos() token.Pos                { return n.NamePos }
func (n *GetExpr) Walk(v Visitor)                { Walk(v, n.Object) }
func (n *GetExpr) expr()                         {}

func (n *SetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Name+" = ", nil) }
func (n *SetExpr) Pos() token.Pos                { return n.NamePos }
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *SetExpr) expr() {}

func (n *ThisExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *ThisExpr) Pos() token.Pos                { return n.Keyword }
func (n *ThisExpr) Walk(v Visitor)                {}
func (n *ThisExpr) expr()                         {}

func (n *SuperExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "super."+n.Method, nil) }
func (n *SuperExpr) Pos() token.Pos                { return n.Keyword }
func (n *SuperExpr) Walk(v Visitor)                {}
func (n *SuperExpr) expr()                         {}
