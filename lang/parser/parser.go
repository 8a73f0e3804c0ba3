// Package parser implements the recursive-descent parser that turns a token
// stream into an AST.
package parser

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// maxArgs is the maximum number of arguments a call may pass, and the
// maximum number of parameters a function may declare.
const maxArgs = 8

// ParseError reports a single syntax error at a specific token.
type ParseError struct {
	Line token.Pos
	// Loc is either "end" (the error was found at EOF), the offending
	// lexeme, or empty for an error reported by the scanner, which has no
	// location part.
	Loc string
	Msg string
}

func (e *ParseError) Error() string {
	loc := " at end"
	switch e.Loc {
	case "end":
	case "":
		loc = ""
	default:
		loc = " at '" + e.Loc + "'"
	}
	return "[line " + strconv.Itoa(int(e.Line)) + "] Error" + loc + ": " + e.Msg
}

// ParseFiles reads and parses each named source file, returning the program
// AST for each and every syntax error collected across all of them.
func ParseFiles(_ context.Context, files ...string) ([]*ast.Program, []error) {
	progs := make([]*ast.Program, 0, len(files))
	var errs []error
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		prog, perrs := Parse(src, file)
		progs = append(progs, prog)
		errs = append(errs, perrs...)
	}
	return progs, errs
}

// Parse parses a single source buffer (name is used only for diagnostics,
// e.g. a REPL line) and returns the program AST and any syntax errors.
func Parse(src []byte, name string) (*ast.Program, []error) {
	var p parser
	p.init(src)
	prog := p.parseProgram()
	prog.Name = name
	return prog, p.errs
}

// parser holds the mutable state of a single parse.
type parser struct {
	scanner scanner.Scanner
	errs    []error

	tok token.Token
	val token.Value
}

func (p *parser) init(src []byte) {
	p.scanner.Init(src, p.scanError)
	p.advance()
}

func (p *parser) scanError(line token.Pos, msg string) {
	p.errs = append(p.errs, &ParseError{Line: line, Loc: "", Msg: msg})
}

func (p *parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

// errPanicMode unwinds the recursive-descent call stack up to parseStmt,
// which recovers it and synchronizes.
var errPanicMode = errors.New("parser: panic mode")

func (p *parser) check(tok token.Token) bool { return p.tok == tok }

// match advances and returns true if the current token is tok, otherwise it
// leaves the parser untouched and returns false.
func (p *parser) match(toks ...token.Token) bool {
	for _, tok := range toks {
		if p.tok == tok {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to be tok, advancing past it and
// returning its position. Otherwise it records a parse error and panics
// with errPanicMode, to be recovered at the statement level.
func (p *parser) consume(tok token.Token, errMsg string) token.Pos {
	if p.tok == tok {
		pos := p.val.Pos
		p.advance()
		return pos
	}
	panic(p.errorHere(errMsg))
}

// errorHere records a parse error at the current token and returns
// errPanicMode, so call sites can `panic(p.errorHere(...))`.
func (p *parser) errorHere(msg string) error {
	loc := p.val.Raw
	if p.tok == token.EOF {
		loc = "end"
	}
	p.errs = append(p.errs, &ParseError{Line: p.val.Pos, Loc: loc, Msg: msg})
	return errPanicMode
}

// errorAt records a parse error at a specific line/lexeme without touching
// control flow (used when the caller wants to keep parsing).
func (p *parser) errorAt(pos token.Pos, loc, msg string) {
	p.errs = append(p.errs, &ParseError{Line: pos, Loc: loc, Msg: msg})
}

// synchronize discards tokens until it finds a likely statement boundary,
// per the spec: one past a ';', or at a statement-starting keyword.
func (p *parser) synchronize() {
	for p.tok != token.EOF {
		if p.tok == token.SEMI {
			p.advance()
			return
		}
		switch p.tok {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
