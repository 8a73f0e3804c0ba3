// Package resolver implements the static pass that runs between parsing and
// evaluation: it walks the AST once, tracking lexical scopes, and annotates
// every variable reference (Variable, Assign, This, Super) with the number
// of scopes between its use and its declaration. The evaluator trusts this
// annotation completely; it never searches outward for a binding itself.
package resolver

import (
	"strconv"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// ResolveError reports a single static error found while resolving, in the
// same format as a parse error.
type ResolveError struct {
	Line token.Pos
	Loc  string
	Msg  string
}

func (e *ResolveError) Error() string {
	loc := " at end"
	if e.Loc != "end" {
		loc = " at '" + e.Loc + "'"
	}
	return "[line " + strconv.Itoa(int(e.Line)) + "] Error" + loc + ": " + e.Msg
}

type functionKind int

const (
	noFunction functionKind = iota
	function
	method
	initializer
)

type classKind int

const (
	noClass classKind = iota
	class
	subclass
)

// scope maps a locally declared name to whether its initializer has
// finished resolving (false while resolving its own init expression, true
// once defined).
type scope map[string]bool

// Resolve resolves every declaration and reference in prog, mutating its
// Variable/Assign/This/Super nodes in place with their resolved depth. It
// returns every static error found; prog should not be evaluated if the
// returned slice is non-empty.
func Resolve(prog *ast.Program) []error {
	var r resolver
	for _, stmt := range prog.Stmts {
		r.resolveStmt(stmt)
	}
	return r.errs
}

type resolver struct {
	scopes          []scope
	currentFunction functionKind
	currentClass    classKind
	errs            []error
}

func (r *resolver) errorf(pos token.Pos, loc, msg string) {
	r.errs = append(r.errs, &ResolveError{Line: pos, Loc: loc, Msg: msg})
}

func (r *resolver) push()     { r.scopes = append(r.scopes, make(scope)) }
func (r *resolver) pop()      { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *resolver) top() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope as not-yet-defined. It is a
// no-op (no error, no entry) at the global scope, which does not track
// declarations at all: an unresolved reference simply falls back to a
// dynamic global lookup at evaluation time.
func (r *resolver) declare(name string, pos token.Pos) {
	s := r.top()
	if s == nil {
		return
	}
	if _, ok := s[name]; ok {
		r.errorf(pos, name, "already a variable with this name in this scope")
		return
	}
	s[name] = false
}

func (r *resolver) define(name string) {
	if s := r.top(); s != nil {
		s[name] = true
	}
}

// resolveLocal walks the scope stack innermost-outward looking for name; if
// found at stack index i from the top, it records depth i on the node via
// set. If never found, the node is left with HasDepth false (a global).
func (r *resolver) resolveLocal(name string, set func(depth int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			set(len(r.scopes) - 1 - i)
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarStmt:
		r.declare(s.Name, s.NamePos)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.push()
		r.resolveStmts(s.Stmts)
		r.pop()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ReturnStmt:
		if r.currentFunction == noFunction {
			r.errorf(s.Keyword, "return", "can't return from top-level code")
		}
		if s.Value != nil {
			if r.currentFunction == initializer {
				r.errorf(s.Keyword, "return", "can't return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.FunctionStmt:
		r.declare(s.Name, s.NamePos)
		r.define(s.Name)
		r.resolveFunction(s, function)

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unexpected stmt type")
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.push()
	for _, p := range fn.Params {
		r.declare(p.Name, p.Pos)
		r.define(p.Name)
	}
	r.resolveStmts(fn.Body)
	r.pop()
}

func (r *resolver) resolveClass(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = class
	defer func() { r.currentClass = enclosingClass }()

	r.declare(stmt.Name, stmt.NamePos)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name == stmt.Name {
			r.errorf(stmt.Superclass.NamePos, stmt.Superclass.Name, "a class can't inherit from itself")
		}
		r.currentClass = subclass
		r.resolveExpr(stmt.Superclass)

		r.push()
		r.top()["super"] = true
	}

	r.push()
	r.top()["this"] = true

	for _, m := range stmt.Methods {
		kind := method
		if m.Name == "init" {
			kind = initializer
		}
		r.resolveFunction(m, kind)
	}

	r.pop() // "this" scope
	if stmt.Superclass != nil {
		r.pop() // "super" scope
	}
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.VariableExpr:
		if s := r.top(); s != nil {
			if defined, ok := s[e.Name]; ok && !defined {
				r.errorf(e.NamePos, e.Name, "can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(e.Name, func(depth int) { e.Depth, e.HasDepth = depth, true })

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name, func(depth int) { e.Depth, e.HasDepth = depth, true })

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expr)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == noClass {
			r.errorf(e.Keyword, "this", "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal("this", func(depth int) { e.Depth, e.HasDepth = depth, true })

	case *ast.SuperExpr:
		switch r.currentClass {
		case noClass:
			r.errorf(e.Keyword, "super", "can't use 'super' outside of a class")
			return
		case class:
			r.errorf(e.Keyword, "super", "can't use 'super' in a class with no superclass")
			return
		}
		r.resolveLocal("super", func(depth int) { e.Depth, e.HasDepth = depth, true })

	default:
		panic("resolver: unexpected expr type")
	}
}
