package evaluator

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
	"github.com/mna/lox/lang/types"
)

func (it *Interp) evalExpr(expr ast.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return evalLiteral(e), nil

	case *ast.VariableExpr:
		return it.lookupVariable(e.Name, e.Depth, e.HasDepth, e.NamePos)

	case *ast.AssignExpr:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if e.HasDepth {
			it.env.AssignAt(e.Depth, e.Name, v)
		} else if err := it.env.Assign(e.Name, v); err != nil {
			return nil, newRuntimeError(e.NamePos, "%s", err)
		}
		return v, nil

	case *ast.GroupingExpr:
		return it.evalExpr(e.Expr)

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.CallExpr:
		return it.evalCall(e)

	case *ast.GetExpr:
		obj, err := it.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*types.Instance)
		if !ok {
			return nil, newRuntimeError(e.NamePos, "only instances have properties")
		}
		v, err := inst.Get(e.Name)
		if err != nil {
			return nil, newRuntimeError(e.NamePos, "%s", err)
		}
		return v, nil

	case *ast.SetExpr:
		obj, err := it.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*types.Instance)
		if !ok {
			return nil, newRuntimeError(e.NamePos, "only instances have fields")
		}
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, v)
		return v, nil

	case *ast.ThisExpr:
		return it.lookupVariable("this", e.Depth, e.HasDepth, e.Keyword)

	case *ast.SuperExpr:
		return it.evalSuper(e)

	default:
		panic("evaluator: unexpected expr type")
	}
}

func evalLiteral(e *ast.LiteralExpr) types.Value {
	switch e.Kind {
	case token.NIL:
		return types.NilValue
	case token.TRUE:
		return types.Bool(true)
	case token.FALSE:
		return types.Bool(false)
	case token.NUMBER:
		return types.Number(e.Num)
	case token.STRING:
		return types.String(e.Str)
	default:
		panic("evaluator: unexpected literal kind")
	}
}

func (it *Interp) lookupVariable(name string, depth int, hasDepth bool, pos token.Pos) (types.Value, error) {
	if hasDepth {
		return it.env.GetAt(depth, name), nil
	}
	v, err := it.env.Get(name)
	if err != nil {
		return nil, newRuntimeError(pos, "%s", err)
	}
	return v, nil
}

func (it *Interp) evalUnary(e *ast.UnaryExpr) (types.Value, error) {
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.MINUS:
		n, ok := right.(types.Number)
		if !ok {
			return nil, newRuntimeError(e.OpPos, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return types.Bool(!right.Truth()), nil
	default:
		panic("evaluator: unexpected unary operator")
	}
}

func (it *Interp) evalBinary(e *ast.BinaryExpr) (types.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.EQ_EQ:
		return types.Bool(types.Equal(left, right)), nil
	case token.BANG_EQ:
		return types.Bool(!types.Equal(left, right)), nil
	case token.PLUS:
		if ln, ok := left.(types.Number); ok {
			if rn, ok := right.(types.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(types.String); ok {
			if rs, ok := right.(types.String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.OpPos, "operands must be two numbers or two strings")
	}

	ln, lok := left.(types.Number)
	rn, rok := right.(types.Number)
	if !lok || !rok {
		return nil, newRuntimeError(e.OpPos, "operands must be numbers")
	}
	switch e.Op {
	case token.MINUS:
		return ln - rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.SLASH:
		return ln / rn, nil
	case token.GT:
		return types.Bool(ln > rn), nil
	case token.GT_EQ:
		return types.Bool(ln >= rn), nil
	case token.LT:
		return types.Bool(ln < rn), nil
	case token.LT_EQ:
		return types.Bool(ln <= rn), nil
	default:
		panic("evaluator: unexpected binary operator")
	}
}

func (it *Interp) evalLogical(e *ast.LogicalExpr) (types.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op == token.OR {
		if left.Truth() {
			return left, nil
		}
	} else if !left.Truth() {
		return left, nil
	}
	return it.evalExpr(e.Right)
}

func (it *Interp) evalSuper(e *ast.SuperExpr) (types.Value, error) {
	v := it.env.GetAt(e.Depth, "super")
	superclass := v.(*types.Class)
	this := it.env.GetAt(e.Depth-1, "this").(*types.Instance)

	method, ok := superclass.FindMethod(e.Method)
	if !ok {
		return nil, newRuntimeError(e.MethodPos, "undefined property '%s'", e.Method)
	}
	return method.Bind(this), nil
}
