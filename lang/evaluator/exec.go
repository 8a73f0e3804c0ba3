package evaluator

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/types"
)

func (it *Interp) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := it.evalExpr(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var v types.Value = types.NilValue
		if s.Init != nil {
			var err error
			v, err = it.evalExpr(s.Init)
			if err != nil {
				return err
			}
		}
		it.env.Define(s.Name, v)
		return nil

	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, types.NewChild(it.env))

	case *ast.IfStmt:
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return it.execStmt(s.Then)
		}
		if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.ReturnStmt:
		var v types.Value = types.NilValue
		if s.Value != nil {
			var err error
			v, err = it.evalExpr(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v}

	case *ast.FunctionStmt:
		fn := &types.Function{Decl: s, Closure: it.env}
		it.env.Define(s.Name, fn)
		return nil

	case *ast.ClassStmt:
		return it.execClassStmt(s)

	default:
		panic("evaluator: unexpected stmt type")
	}
}

// execBlock runs stmts against env, restoring the interpreter's previous
// environment on every exit path (normal, error, or return-unwind).
func (it *Interp) execBlock(stmts []ast.Stmt, env *types.Environment) error {
	prev := it.env
	it.env = env
	defer func() { it.env = prev }()

	for _, stmt := range stmts {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execClassStmt(stmt *ast.ClassStmt) error {
	var superclass *types.Class
	if stmt.Superclass != nil {
		v, err := it.evalExpr(stmt.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*types.Class)
		if !ok {
			return newRuntimeError(stmt.Superclass.NamePos, "superclass must be a class")
		}
		superclass = sc
	}

	it.env.Define(stmt.Name, types.NilValue)

	methodEnv := it.env
	if superclass != nil {
		methodEnv = types.NewChild(it.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*types.Function, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name] = &types.Function{
			Decl:          m,
			Closure:       methodEnv,
			IsInitializer: m.Name == "init",
		}
	}

	class := types.NewClass(stmt.Name, superclass, methods)
	it.env.Define(stmt.Name, class)
	return nil
}
