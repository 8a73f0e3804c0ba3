package types

import (
	"strconv"
	"strings"
)

// Number is Lox's single numeric type: every literal and every arithmetic
// result is an IEEE-754 double. There is no separate integer type.
type Number float64

var _ Value = Number(0)

// String renders the shortest decimal that round-trips to this value,
// without a fractional part when the value is integral (1, not 1.0).
func (n Number) String() string {
	s := strconv.FormatFloat(float64(n), 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func (n Number) Type() string { return "number" }
func (n Number) Truth() bool  { return true }
