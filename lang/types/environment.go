package types

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is a lexical scope: a table of name to value bindings plus a
// link to the enclosing scope it was created in. The chain of Environments
// mirrors the nesting of blocks, function bodies, and the global scope at
// its root.
//
// The resolver annotates each variable reference with the number of scopes
// between its use and its declaration (its "depth"). GetAt and AssignAt walk
// exactly that many links before touching the map, so a shadowed outer
// binding is never consulted for a reference the resolver already pinned to
// an inner one. References the resolver left unannotated (globals, and any
// use it could not statically bind) fall back to Get/Assign, which look the
// name up in the global (root) scope only.
type Environment struct {
	bindings  *swiss.Map[string, Value]
	enclosing *Environment
}

// NewGlobal returns a fresh environment with no enclosing scope.
func NewGlobal() *Environment {
	return &Environment{bindings: swiss.NewMap[string, Value](32)}
}

// NewChild returns a fresh environment nested inside enclosing.
func NewChild(enclosing *Environment) *Environment {
	return &Environment{bindings: swiss.NewMap[string, Value](8), enclosing: enclosing}
}

// Define binds name to v in this environment, overwriting any existing
// binding of the same name in this scope (used both for fresh declarations
// and, at the top level, for redeclaring a global).
func (e *Environment) Define(name string, v Value) {
	e.bindings.Put(name, v)
}

// ancestor walks distance links up the enclosing chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt returns the binding of name exactly distance scopes up the chain
// from e, as computed by the resolver.
func (e *Environment) GetAt(distance int, name string) Value {
	env := e.ancestor(distance)
	v, ok := env.bindings.Get(name)
	if !ok {
		panic("lox: resolver produced a depth with no matching binding for " + name)
	}
	return v
}

// AssignAt assigns v to name exactly distance scopes up the chain from e.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).bindings.Put(name, v)
}

// root returns the environment at the top of the enclosing chain, the
// global scope.
func (e *Environment) root() *Environment {
	env := e
	for env.enclosing != nil {
		env = env.enclosing
	}
	return env
}

// Get looks up name in the global scope, for a reference the resolver left
// unannotated because it never found a matching local declaration.
func (e *Environment) Get(name string) (Value, error) {
	v, ok := e.root().bindings.Get(name)
	if !ok {
		return nil, fmt.Errorf("undefined variable '%s'", name)
	}
	return v, nil
}

// Assign sets an existing binding of name in the global scope, without
// creating a new one. It is an error to assign to a name that was never
// declared.
func (e *Environment) Assign(name string, v Value) error {
	if _, ok := e.root().bindings.Get(name); !ok {
		return fmt.Errorf("undefined variable '%s'", name)
	}
	e.root().bindings.Put(name, v)
	return nil
}
