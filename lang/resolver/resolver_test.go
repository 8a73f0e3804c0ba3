package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func resolveOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, perrs := parser.Parse([]byte(src), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.Empty(t, errs)
	return prog
}

func TestResolveGlobalIsUnresolved(t *testing.T) {
	prog := resolveOK(t, `var a = 1;
print a;`)
	print := prog.Stmts[1].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)
	require.False(t, v.HasDepth)
}

func TestResolveLocalDepth(t *testing.T) {
	prog := resolveOK(t, `{
  var a = 1;
  print a;
}`)
	block := prog.Stmts[0].(*ast.BlockStmt)
	print := block.Stmts[1].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)
	require.True(t, v.HasDepth)
	require.Equal(t, 0, v.Depth)
}

func TestResolveClosureDepth(t *testing.T) {
	// "global" printed from inside a nested block binds to the block-scoped
	// "global", not the outer one: lexical, not dynamic, scoping.
	prog := resolveOK(t, `var global = "outer";
{
  var global = "inner";
  {
    print global;
  }
}`)
	outerBlock := prog.Stmts[1].(*ast.BlockStmt)
	innerBlock := outerBlock.Stmts[1].(*ast.BlockStmt)
	print := innerBlock.Stmts[0].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)
	require.True(t, v.HasDepth)
	require.Equal(t, 1, v.Depth)
}

func TestResolveFunctionParamDepth(t *testing.T) {
	prog := resolveOK(t, `fun f(a) {
  print a;
}`)
	fn := prog.Stmts[0].(*ast.FunctionStmt)
	print := fn.Body[0].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)
	require.True(t, v.HasDepth)
	require.Equal(t, 0, v.Depth)
}

func TestResolveSelfReferenceInInitializerIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`{
  var a = a;
}`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveRedeclarationInLocalScopeIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`{
  var a = 1;
  var a = 2;
}`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveRedeclarationAtGlobalScopeIsOK(t *testing.T) {
	resolveOK(t, `var a = 1;
var a = 2;
print a;`)
}

func TestResolveReturnFromTopLevelIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`return 1;`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`print this;`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`class A {
  m() {
    super.m();
  }
}`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveSuperOutsideClassIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`print super.m();`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveClassInheritsFromItselfIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`class A < A {}`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveInitializerReturningValueIsError(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`class A {
  init() {
    return 1;
  }
}`), "test")
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	require.NotEmpty(t, errs)
}

func TestResolveInitializerBareReturnIsOK(t *testing.T) {
	resolveOK(t, `class A {
  init() {
    return;
  }
}`)
}

func TestResolveSuperThisDepthRelationship(t *testing.T) {
	// super is resolved one scope further out than this: the resolver pushes
	// the "super" scope before the "this" scope, so a method body (whose
	// parameter scope is depth 0) sees this at depth 1 and super at depth 2.
	prog := resolveOK(t, `class A {
  m() { print "A.m"; }
}
class B < A {
  m() {
    super.m();
    print this;
  }
}`)
	classB := prog.Stmts[1].(*ast.ClassStmt)
	method := classB.Methods[0]
	superCall := method.Body[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	super := superCall.Callee.(*ast.SuperExpr)
	print := method.Body[1].(*ast.PrintStmt)
	this := print.Expr.(*ast.ThisExpr)

	require.True(t, super.HasDepth)
	require.True(t, this.HasDepth)
	require.Equal(t, this.Depth+1, super.Depth)
}

func TestResolveClassNameAtGlobalScopeIsUnresolved(t *testing.T) {
	// A top-level class's own name lives in the (untracked) global scope, so
	// referencing it from inside a method falls through the this/super
	// scopes and comes back unresolved, same as any other global.
	prog := resolveOK(t, `class A {
  m() {
    print A;
  }
}`)
	classA := prog.Stmts[0].(*ast.ClassStmt)
	print := classA.Methods[0].Body[0].(*ast.PrintStmt)
	v := print.Expr.(*ast.VariableExpr)
	require.False(t, v.HasDepth)
}
