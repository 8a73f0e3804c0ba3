package evaluator

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/types"
)

func (it *Interp) evalCall(e *ast.CallExpr) (types.Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]types.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *types.Function:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		return it.callFunction(fn, args)

	case *types.NativeFunction:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		v, err := fn.Fn(args)
		if err != nil {
			return nil, newRuntimeError(e.Paren, "%s", err)
		}
		return v, nil

	case *types.Class:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		inst := types.NewInstance(fn)
		if init, ok := fn.FindMethod("init"); ok {
			if _, err := it.callFunction(init.Bind(inst), args); err != nil {
				return nil, err
			}
		}
		return inst, nil

	default:
		return nil, newRuntimeError(e.Paren, "can only call functions and classes")
	}
}

// callFunction runs fn's body against a fresh child of its closure, with
// parameters bound to args, and unwraps the return-signal protocol: an
// initializer always yields the bound `this` regardless of what (if
// anything) it returned; any other function yields its returned value, or
// nil if its body ran to completion without a return.
func (it *Interp) callFunction(fn *types.Function, args []types.Value) (types.Value, error) {
	env := types.NewChild(fn.Closure)
	for i, p := range fn.Decl.Params {
		env.Define(p.Name, args[i])
	}

	err := it.execBlock(fn.Decl.Body, env)
	if fn.IsInitializer {
		if err != nil {
			if _, ok := err.(*returnSignal); !ok {
				return nil, err
			}
		}
		return fn.Closure.GetAt(0, "this"), nil
	}

	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return types.NilValue, nil
}
