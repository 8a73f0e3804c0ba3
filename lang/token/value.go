package token

// Value carries the materialized payload of a token alongside its kind. The
// scanner fills in Str for STRING tokens and Num for NUMBER tokens; Raw is
// always the exact source lexeme, used for identifiers, keywords and error
// messages.
type Value struct {
	Raw string
	Pos Pos
	Str string
	Num float64
}
