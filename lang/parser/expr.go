package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// parseExpr parses a full expression: expression = assignment.
func (p *parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// assignment = ( call "." )? IDENT "=" assignment | logicOr
//
// The grammar is ambiguous between a plain variable/getter expression and an
// assignment target, so this parses the left-hand side as a normal
// expression first and only afterwards decides, based on what was parsed and
// whether an '=' follows, whether to build an Assign/Set node.
func (p *parser) parseAssignment() ast.Expr {
	expr := p.parseOr()

	if p.check(token.EQ) {
		eq := p.val.Pos
		p.advance()
		value := p.parseAssignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, NamePos: target.NamePos, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, NamePos: target.NamePos, Value: value}
		default:
			p.errorAt(eq, "=", "invalid assignment target")
			return expr
		}
	}
	return expr
}

// logicOr = logicAnd ( "or" logicAnd )*
func (p *parser) parseOr() ast.Expr {
	expr := p.parseAnd()
	for p.check(token.OR) {
		op := token.OR
		opPos := p.val.Pos
		p.advance()
		right := p.parseAnd()
		expr = &ast.LogicalExpr{Left: expr, Op: op, OpPos: opPos, Right: right}
	}
	return expr
}

// logicAnd = equality ( "and" equality )*
func (p *parser) parseAnd() ast.Expr {
	expr := p.parseEquality()
	for p.check(token.AND) {
		op := token.AND
		opPos := p.val.Pos
		p.advance()
		right := p.parseEquality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, OpPos: opPos, Right: right}
	}
	return expr
}

// equality = comparison ( ( "!=" | "==" ) comparison )*
func (p *parser) parseEquality() ast.Expr {
	expr := p.parseComparison()
	for p.check(token.BANG_EQ) || p.check(token.EQ_EQ) {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseComparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, OpPos: opPos, Right: right}
	}
	return expr
}

// comparison = addition ( ( ">" | ">=" | "<" | "<=" ) addition )*
func (p *parser) parseComparison() ast.Expr {
	expr := p.parseAddition()
	for p.check(token.GT) || p.check(token.GT_EQ) || p.check(token.LT) || p.check(token.LT_EQ) {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseAddition()
		expr = &ast.BinaryExpr{Left: expr, Op: op, OpPos: opPos, Right: right}
	}
	return expr
}

// addition = mult ( ( "+" | "-" ) mult )*
func (p *parser) parseAddition() ast.Expr {
	expr := p.parseMult()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseMult()
		expr = &ast.BinaryExpr{Left: expr, Op: op, OpPos: opPos, Right: right}
	}
	return expr
}

// mult = unary ( ( "*" | "/" ) unary )*
func (p *parser) parseMult() ast.Expr {
	expr := p.parseUnary()
	for p.check(token.STAR) || p.check(token.SLASH) {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseUnary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, OpPos: opPos, Right: right}
	}
	return expr
}

// unary = ( "!" | "-" ) unary | call
func (p *parser) parseUnary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseUnary()
		return &ast.UnaryExpr{Op: op, OpPos: opPos, Right: right}
	}
	return p.parseCall()
}

// call = primary ( "(" args? ")" | "." IDENT )*
func (p *parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.LPAREN):
			p.advance()
			expr = p.finishCall(expr)
		case p.check(token.DOT):
			p.advance()
			namePos := p.val.Pos
			if !p.check(token.IDENT) {
				panic(p.errorHere("expect property name after '.'"))
			}
			name := p.val.Raw
			p.advance()
			expr = &ast.GetExpr{Object: expr, Name: name, NamePos: namePos}
		default:
			return expr
		}
	}
}

// args = expression ( "," expression ){0,7}
func (p *parser) finishCall(callee ast.Expr) *ast.CallExpr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.val.Pos, p.val.Raw, "can't have more than 8 arguments")
			}
			args = append(args, p.parseExpr())
			if !p.check(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	paren := p.consume(token.RPAREN, "expect ')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary = "true" | "false" | "nil" | NUMBER | STRING
//         | "this" | "super" "." IDENT | IDENT
//         | "(" expression ")"
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case token.FALSE, token.TRUE, token.NIL, token.NUMBER, token.STRING:
		lit := &ast.LiteralExpr{Start: p.val.Pos, Kind: p.tok, Raw: p.val.Raw, Str: p.val.Str, Num: p.val.Num}
		p.advance()
		return lit
	case token.THIS:
		kw := p.val.Pos
		p.advance()
		return &ast.ThisExpr{Keyword: kw}
	case token.SUPER:
		kw := p.val.Pos
		p.advance()
		p.consume(token.DOT, "expect '.' after 'super'")
		methodPos := p.val.Pos
		if !p.check(token.IDENT) {
			panic(p.errorHere("expect superclass method name"))
		}
		method := p.val.Raw
		p.advance()
		return &ast.SuperExpr{Keyword: kw, Method: method, MethodPos: methodPos}
	case token.IDENT:
		name, namePos := p.val.Raw, p.val.Pos
		p.advance()
		return &ast.VariableExpr{Name: name, NamePos: namePos}
	case token.LPAREN:
		lparen := p.val.Pos
		p.advance()
		expr := p.parseExpr()
		rparen := p.consume(token.RPAREN, "expect ')' after expression")
		return &ast.GroupingExpr{Lparen: lparen, Expr: expr, Rparen: rparen}
	default:
		panic(p.errorHere("expect expression"))
	}
}
