package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := parser.Parse([]byte(src), "test")
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	return prog
}

func TestParseLiterals(t *testing.T) {
	prog := parseOK(t, `1; "hi"; true; false; nil;`)
	require.Len(t, prog.Stmts, 5)
	for _, s := range prog.Stmts {
		_, ok := s.(*ast.ExprStmt)
		require.True(t, ok)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := parseOK(t, `1 + 2 * 3;`)
	require.Len(t, prog.Stmts, 1)
	es := prog.Stmts[0].(*ast.ExprStmt)
	bin := es.Expr.(*ast.BinaryExpr)
	require.Equal(t, token.PLUS, bin.Op)
	_, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok, "right operand of + should be the 2*3 product")
}

func TestParseAssignmentTargets(t *testing.T) {
	prog := parseOK(t, `a = 1; a.b = 2;`)
	require.Len(t, prog.Stmts, 2)

	assign := prog.Stmts[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	require.Equal(t, "a", assign.Name)

	set := prog.Stmts[1].(*ast.ExprStmt).Expr.(*ast.SetExpr)
	require.Equal(t, "b", set.Name)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := parser.Parse([]byte(`1 = 2;`), "test")
	require.NotEmpty(t, errs)
}

func TestParseClassWithSuperclass(t *testing.T) {
	prog := parseOK(t, `class B < A { m() { return 1; } }`)
	require.Len(t, prog.Stmts, 1)
	cls := prog.Stmts[0].(*ast.ClassStmt)
	require.Equal(t, "B", cls.Name)
	require.NotNil(t, cls.Superclass)
	require.Equal(t, "A", cls.Superclass.Name)
	require.Len(t, cls.Methods, 1)
	require.Equal(t, "m", cls.Methods[0].Name)
	require.False(t, cls.Methods[0].Fun.Valid(), "methods have no leading 'fun' position")
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog := parseOK(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, prog.Stmts, 1)
	block := prog.Stmts[0].(*ast.BlockStmt)
	require.Len(t, block.Stmts, 2)
	_, ok := block.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	loop, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	loopBody := loop.Body.(*ast.BlockStmt)
	require.Len(t, loopBody.Stmts, 2)
}

func TestParseTooManyArguments(t *testing.T) {
	_, errs := parser.Parse([]byte(`f(1,2,3,4,5,6,7,8,9);`), "test")
	require.NotEmpty(t, errs)
}

func TestParseSynchronizesAfterError(t *testing.T) {
	prog, errs := parser.Parse([]byte(`var ;
print "recovered";`), "test")
	require.NotEmpty(t, errs)
	require.Len(t, prog.Stmts, 1)
	_, ok := prog.Stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
}
