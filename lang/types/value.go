// Package types defines the runtime value model shared by the resolver and
// the evaluator: the tagged union of primitives plus the three
// reference-identity object kinds (function, class, instance), and the
// lexically-scoped Environment that binds names to them.
//
// Function, Class and Instance carry only data; the evaluator package
// implements the behavior (calling a function, constructing an instance,
// dispatching a method) by type-switching on Value. This keeps this package
// free of any dependency on the evaluator, avoiding an import cycle between
// "the thing that is called" and "the thing that calls it".
package types

// Value is the interface implemented by every value the evaluator can
// produce or operate on: Nil, Bool, Number, String, *Function,
// *NativeFunction, *Class and *Instance.
type Value interface {
	// String returns the value's display form, as printed by a `print`
	// statement.
	String() string

	// Type returns a short name for the value's type, used in error
	// messages (e.g. "number", "string", "instance").
	Type() string

	// Truth reports the value's truthiness. Only Nil and the boolean false
	// are falsy; every other value, including 0 and the empty string, is
	// truthy.
	Truth() bool
}

// Equal reports whether two values are equal under Lox's `==` semantics:
// structural equality for primitives, reference identity for functions,
// classes and instances, and always false across differing variant kinds.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *NativeFunction:
		bv, ok := b.(*NativeFunction)
		return ok && av == bv
	case *Class:
		bv, ok := b.(*Class)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	default:
		return false
	}
}
