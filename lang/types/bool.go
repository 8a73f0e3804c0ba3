package types

// Bool is the type of boolean values.
type Bool bool

// Bool is a Value.
var _ Value = Bool(false)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Type() string { return "bool" }
func (b Bool) Truth() bool  { return bool(b) }
