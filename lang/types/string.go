package types

// String is Lox's text type: an immutable sequence of bytes, displayed as
// its raw characters (unlike Go's %q quoting).
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return true }
