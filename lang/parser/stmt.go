package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// program = declaration* EOF
func (p *parser) parseProgram() *ast.Program {
	var prog ast.Program
	for !p.check(token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	prog.EOF = p.val.Pos
	return &prog
}

// declaration = classDecl | funDecl | varDecl | statement
//
// Every syntax error raised while parsing a declaration or statement unwinds
// here (via the errPanicMode panic) so the parser can synchronize at a
// statement boundary and keep reporting further errors.
func (p *parser) parseDeclaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.check(token.CLASS):
		return p.parseClassDecl()
	case p.check(token.FUN):
		p.advance()
		return p.parseFunction("function")
	case p.check(token.VAR):
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

// classDecl = "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *parser) parseClassDecl() *ast.ClassStmt {
	var stmt ast.ClassStmt
	stmt.Class = p.consume(token.CLASS, "expect 'class'")
	stmt.NamePos = p.val.Pos
	stmt.Name = p.expectIdent("expect class name")

	if p.check(token.LT) {
		p.advance()
		namePos := p.val.Pos
		name := p.expectIdent("expect superclass name")
		stmt.Superclass = &ast.VariableExpr{Name: name, NamePos: namePos}
	}

	p.consume(token.LBRACE, "expect '{' before class body")
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmt.Methods = append(stmt.Methods, p.parseFunction("method"))
	}
	stmt.End = p.consume(token.RBRACE, "expect '}' after class body")
	return &stmt
}

// funDecl = "fun" function
// function = IDENT "(" params? ")" block
//
// kind is "function" or "method"; it is used in error messages and decides
// FunctionStmt.Fun. This never consumes the leading "fun" keyword (for a
// function the caller already did, a method has none): for a function, Fun
// is set to the line of the name, for a method it is left as token.NoPos.
func (p *parser) parseFunction(kind string) *ast.FunctionStmt {
	var stmt ast.FunctionStmt
	stmt.NamePos = p.val.Pos
	stmt.Name = p.expectIdent("expect " + kind + " name")
	if kind == "function" {
		stmt.Fun = stmt.NamePos
	}

	p.consume(token.LPAREN, "expect '(' after "+kind+" name")
	if !p.check(token.RPAREN) {
		for {
			if len(stmt.Params) >= maxArgs {
				p.errorAt(p.val.Pos, p.val.Raw, "can't have more than 8 parameters")
			}
			paramPos := p.val.Pos
			name := p.expectIdent("expect parameter name")
			stmt.Params = append(stmt.Params, &ast.Param{Name: name, Pos: paramPos})
			if !p.check(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.consume(token.RPAREN, "expect ')' after parameters")

	p.consume(token.LBRACE, "expect '{' before "+kind+" body")
	stmt.Body, stmt.End = p.parseBlockBody()
	return &stmt
}

// varDecl = "var" IDENT ( "=" expression )? ";"
func (p *parser) parseVarDecl() *ast.VarStmt {
	var stmt ast.VarStmt
	stmt.Var = p.consume(token.VAR, "expect 'var'")
	stmt.NamePos = p.val.Pos
	stmt.Name = p.expectIdent("expect variable name")

	if p.check(token.EQ) {
		p.advance()
		stmt.Init = p.parseExpr()
	}
	p.consume(token.SEMI, "expect ';' after variable declaration")
	return &stmt
}

// statement = exprStmt | forStmt | ifStmt | printStmt | returnStmt
//           | whileStmt | block
func (p *parser) parseStatement() ast.Stmt {
	switch {
	case p.check(token.FOR):
		return p.parseForStatement()
	case p.check(token.IF):
		return p.parseIfStatement()
	case p.check(token.PRINT):
		return p.parsePrintStatement()
	case p.check(token.RETURN):
		return p.parseReturnStatement()
	case p.check(token.WHILE):
		return p.parseWhileStatement()
	case p.check(token.LBRACE):
		lbrace := p.val.Pos
		p.advance()
		stmts, rbrace := p.parseBlockBody()
		return &ast.BlockStmt{Lbrace: lbrace, Stmts: stmts, Rbrace: rbrace}
	default:
		return p.parseExprStatement()
	}
}

// block = "{" declaration* "}"; the opening brace must already be consumed.
func (p *parser) parseBlockBody() ([]ast.Stmt, token.Pos) {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	rbrace := p.consume(token.RBRACE, "expect '}' after block")
	return stmts, rbrace
}

// ifStmt = "if" "(" expression ")" statement ( "else" statement )?
func (p *parser) parseIfStatement() *ast.IfStmt {
	var stmt ast.IfStmt
	stmt.If = p.consume(token.IF, "expect 'if'")
	p.consume(token.LPAREN, "expect '(' after 'if'")
	stmt.Cond = p.parseExpr()
	p.consume(token.RPAREN, "expect ')' after if condition")
	stmt.Then = p.parseStatement()
	if p.check(token.ELSE) {
		p.advance()
		stmt.Else = p.parseStatement()
	}
	return &stmt
}

// whileStmt = "while" "(" expression ")" statement
func (p *parser) parseWhileStatement() *ast.WhileStmt {
	var stmt ast.WhileStmt
	stmt.While = p.consume(token.WHILE, "expect 'while'")
	p.consume(token.LPAREN, "expect '(' after 'while'")
	stmt.Cond = p.parseExpr()
	p.consume(token.RPAREN, "expect ')' after condition")
	stmt.Body = p.parseStatement()
	return &stmt
}

// forStmt = "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
//
// Desugars into a Block containing the initializer (if any) and a While
// whose condition defaults to the literal `true` when omitted, and whose
// body is a Block of the original body followed by the increment.
func (p *parser) parseForStatement() ast.Stmt {
	forPos := p.consume(token.FOR, "expect 'for'")
	p.consume(token.LPAREN, "expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.check(token.SEMI):
		p.advance()
	case p.check(token.VAR):
		init = p.parseVarDecl()
	default:
		init = p.parseExprStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.parseExpr()
	}
	p.consume(token.SEMI, "expect ';' after loop condition")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.parseExpr()
	}
	p.consume(token.RPAREN, "expect ')' after for clauses")

	body := p.parseStatement()

	if incr != nil {
		body = &ast.BlockStmt{
			Lbrace: body.Pos(),
			Stmts:  []ast.Stmt{body, &ast.ExprStmt{Expr: incr}},
			Rbrace: body.Pos(),
		}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Start: forPos, Kind: token.TRUE, Raw: "true"}
	}
	loop := &ast.WhileStmt{While: forPos, Cond: cond, Body: body}

	if init == nil {
		return loop
	}
	return &ast.BlockStmt{Lbrace: forPos, Stmts: []ast.Stmt{init, loop}, Rbrace: forPos}
}

// printStmt = "print" expression ";"
func (p *parser) parsePrintStatement() *ast.PrintStmt {
	print := p.consume(token.PRINT, "expect 'print'")
	expr := p.parseExpr()
	p.consume(token.SEMI, "expect ';' after value")
	return &ast.PrintStmt{Print: print, Expr: expr}
}

// returnStmt = "return" expression? ";"
func (p *parser) parseReturnStatement() *ast.ReturnStmt {
	keyword := p.consume(token.RETURN, "expect 'return'")
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.parseExpr()
	}
	p.consume(token.SEMI, "expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// exprStmt = expression ";"
func (p *parser) parseExprStatement() *ast.ExprStmt {
	expr := p.parseExpr()
	p.consume(token.SEMI, "expect ';' after expression")
	return &ast.ExprStmt{Expr: expr}
}

// expectIdent requires the current token to be an identifier, advancing
// past it and returning its lexeme. Otherwise it records a parse error and
// enters panic mode, same as consume.
func (p *parser) expectIdent(errMsg string) string {
	if p.tok != token.IDENT {
		panic(p.errorHere(errMsg))
	}
	name := p.val.Raw
	p.advance()
	return name
}
