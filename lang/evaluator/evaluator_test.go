package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/mna/lox/lang/evaluator"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, perrs := parser.Parse([]byte(src), "test")
	require.Empty(t, perrs)
	rerrs := resolver.Resolve(prog)
	require.Empty(t, rerrs)

	var buf bytes.Buffer
	it := evaluator.New()
	it.Stdout = &buf
	err := it.Run(prog)
	return buf.String(), err
}

func TestPrintPrimitives(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{`print nil;`, "nil\n"},
		{`print true;`, "true\n"},
		{`print false;`, "false\n"},
		{`print 0;`, "0\n"},
		{`print 3.14;`, "3.14\n"},
		{`print "x";`, "x\n"},
	}
	for _, c := range cases {
		out, err := run(t, c.src)
		require.NoError(t, err)
		require.Equal(t, c.want, out)
	}
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2;`)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestFibonacci(t *testing.T) {
	out, err := run(t, `fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);`)
	require.NoError(t, err)
	require.Equal(t, "55\n", out)
}

func TestBagelFieldAccess(t *testing.T) {
	out, err := run(t, `class Bagel {}
var b = Bagel();
b.flavor = "poppy";
print b.flavor;`)
	require.NoError(t, err)
	require.Equal(t, "poppy\n", out)
}

func TestInheritanceDispatchesThis(t *testing.T) {
	out, err := run(t, `class A {
  greet() { print "hi from " + this.name; }
}
class B < A {}
var x = B();
x.name = "B";
x.greet();`)
	require.NoError(t, err)
	require.Equal(t, "hi from B\n", out)
}

func TestLexicalNotDynamicScoping(t *testing.T) {
	out, err := run(t, `var a = "global";
{
  fun show() { print a; }
  show();
  var a = "local";
  show();
}`)
	require.NoError(t, err)
	require.Equal(t, "global\nglobal\n", out)
}

func TestClosureCapturesBindingNotValue(t *testing.T) {
	out, err := run(t, `fun counter() {
  var i = 0;
  fun incr() {
    i = i + 1;
    print i;
  }
  return incr;
}
var c = counter();
c();
c();
c();`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n", out)
}

func TestShortCircuitOr(t *testing.T) {
	out, err := run(t, `class Counter { }
var c = Counter();
c.calls = 0;
fun side() {
  c.calls = c.calls + 1;
  return true;
}
true or side();
print c.calls;`)
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestShortCircuitAnd(t *testing.T) {
	out, err := run(t, `class Counter { }
var c = Counter();
c.calls = 0;
fun side() {
  c.calls = c.calls + 1;
  return true;
}
false and side();
print c.calls;`)
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestMethodBindingCapturesReceiver(t *testing.T) {
	out, err := run(t, `class A { m() { return this.x; } }
var a = A();
a.x = 7;
var g = a.m;
print g();`)
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestSuperDispatch(t *testing.T) {
	out, err := run(t, `class A { m() { return 1; } }
class B < A { m() { return super.m() + 1; } }
print B().m();
print A().m();`)
	require.NoError(t, err)
	require.Equal(t, "2\n1\n", out)
}

func TestInitializerAlwaysReturnsInstance(t *testing.T) {
	out, err := run(t, `class C {
  init() { this.ready = true; }
}
var c = C();
print c.ready;
print c.init() == c;`)
	require.NoError(t, err)
	require.Equal(t, "true\ntrue\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; }
f(1);`)
	require.Error(t, err)
}

func TestArityMatchSucceeds(t *testing.T) {
	out, err := run(t, `fun f(a, b) { return a + b; }
print f(1, 2);`)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1;
x();`)
	require.Error(t, err)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print undefined;`)
	require.Error(t, err)
}

func TestOperandsMustBeNumbers(t *testing.T) {
	_, err := run(t, `print "a" - 1;`)
	require.Error(t, err)
}

func TestPlusRequiresMatchingOperandTypes(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	require.Error(t, err)
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err := run(t, `class A {}
var a = A();
print a.nope;`)
	require.Error(t, err)
}

func TestSuperclassMustBeAClass(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`var NotAClass = 1;
class A < NotAClass {}`), "test")
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var buf bytes.Buffer
	it := evaluator.New()
	it.Stdout = &buf
	err := it.Run(prog)
	require.Error(t, err)
}

func TestClockIsNativeArityZero(t *testing.T) {
	out, err := run(t, `print clock() > 0;`)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)
}

func TestDisplayForms(t *testing.T) {
	out, err := run(t, `fun f() {}
print f;
class A {}
print A;
var a = A();
print a;`)
	require.NoError(t, err)
	require.Equal(t, "<fn f>\nA\nA instance\n", out)
}
