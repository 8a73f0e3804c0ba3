package evaluator

import (
	"fmt"
	"strconv"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a failure raised while evaluating an already-resolved
// program: a type mismatch in an operator, an undefined variable, a wrong
// arity call, a call of a non-callable, a property access on a
// non-instance, and so on. Unlike scan/parse/resolve errors, it is never
// accumulated: the first one halts the run.
type RuntimeError struct {
	Line token.Pos
	Msg  string
}

func (e *RuntimeError) Error() string {
	return e.Msg + "\n[line " + strconv.Itoa(int(e.Line)) + "]"
}

func newRuntimeError(pos token.Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: pos, Msg: fmt.Sprintf(format, args...)}
}
