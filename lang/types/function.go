package types

import "github.com/mna/lox/lang/ast"

// Function is a closure: a function or method declaration together with the
// environment that was active when it was evaluated. Calling it (done by
// the evaluator, not this package) creates a child of Closure, binds the
// parameters in it, and runs Decl.Body against that child.
//
// A bound method is a Function whose Closure is a fresh scope, nested
// inside the method's original closure, that defines "this" (and, for a
// subclass method, "super" one scope further out).
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

var _ Value = (*Function)(nil)

func (fn *Function) String() string { return "<fn " + fn.Decl.Name + ">" }
func (fn *Function) Type() string   { return "function" }
func (fn *Function) Truth() bool    { return true }

// Arity is the number of declared parameters.
func (fn *Function) Arity() int { return len(fn.Decl.Params) }

// Bind returns a copy of fn whose closure is a new scope nested in fn's own
// closure, defining "this" as inst. Used when a method is read off an
// instance (a Get expression) so the resulting value still knows its
// receiver when called later, detached from the Get that produced it.
func (fn *Function) Bind(inst *Instance) *Function {
	env := NewChild(fn.Closure)
	env.Define("this", inst)
	return &Function{Decl: fn.Decl, Closure: env, IsInitializer: fn.IsInitializer}
}

// NativeFunction is a built-in implemented in Go, such as clock.
type NativeFunction struct {
	Name string
	Arty int
	Fn   func(args []Value) (Value, error)
}

var _ Value = (*NativeFunction)(nil)

func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Truth() bool    { return true }
func (n *NativeFunction) Arity() int     { return n.Arty }
