package token

// Pos is a 1-based source line number. A value of 0 means "unknown".
//
// Lox's lexical grammar never needs more than line granularity: every
// diagnostic in the reference implementation is reported as "[line L]", so
// unlike a general-purpose compiler frontend there is no column to track.
type Pos int

// NoPos is the zero value of Pos, meaning no position is known.
const NoPos Pos = 0

// Line returns the 1-based line number, or 0 if unknown.
func (p Pos) Line() int { return int(p) }

// Valid reports whether p is a known position.
func (p Pos) Valid() bool { return p != NoPos }
