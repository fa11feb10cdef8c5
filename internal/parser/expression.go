package parser

import (
	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/source"
	"viewmacro/internal/token"
)

// parseExpr parses one expression: a primary followed by any number of
// postfix member accesses, argument lists, and trailing closures.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	primary, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parsePostfix(primary)
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident, token.KwSelf:
		tok := p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Strings.Intern(tok.Text)), true

	case token.Dot:
		dotTok := p.advance()
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
		if !ok {
			return ast.NoExprID, false
		}
		span := dotTok.Span.Cover(nameTok.Span)
		return p.arenas.Exprs.NewImplicitMember(span, p.arenas.Strings.Intern(nameTok.Text)), true

	case token.IntLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitInt, p.arenas.Strings.Intern(tok.Text)), true

	case token.StringLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, p.arenas.Strings.Intern(tok.Text)), true

	case token.LBrace:
		return p.parseClosure()

	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+p.lx.Peek().Text+"\"")
		return ast.NoExprID, false
	}
}

// parsePostfix loops postfix forms on top of an already parsed expression:
//
//	expr '.' Ident
//	expr '(' callArg (',' callArg)* ')' [closure]
//	expr closure
func (p *Parser) parsePostfix(expr ast.ExprID) (ast.ExprID, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(expr).Cover(nameTok.Span)
			expr = p.arenas.Exprs.NewMember(span, expr, p.arenas.Strings.Intern(nameTok.Text))

		case token.LParen:
			p.advance()
			args, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(expr).Cover(closing.Span)

			trailing := ast.NoExprID
			if p.at(token.LBrace) {
				trailing, ok = p.parseClosure()
				if !ok {
					return ast.NoExprID, false
				}
				span = span.Cover(p.exprSpan(trailing))
			}
			expr = p.arenas.Exprs.NewCall(span, expr, args, trailing)

		case token.LBrace:
			trailing, ok := p.parseClosure()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(expr).Cover(p.exprSpan(trailing))
			expr = p.arenas.Exprs.NewCall(span, expr, nil, trailing)

		default:
			return expr, true
		}
	}
}

func (p *Parser) parseCallArgs() ([]ast.CallArg, bool) {
	var args []ast.CallArg
	for !p.at(token.RParen) && !p.at(token.EOF) {
		label, value, ok := p.parseLabeledExpr()
		if !ok {
			return nil, false
		}
		args = append(args, ast.CallArg{Label: label, Value: value})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return args, true
}

// parseLabeledExpr parses `[Ident ':'] expr`. The lexer has one token of
// lookahead, so a leading identifier is consumed first and reinterpreted as
// the start of an expression when no ':' follows.
func (p *Parser) parseLabeledExpr() (source.StringID, ast.ExprID, bool) {
	if p.at(token.Ident) {
		identTok := p.advance()
		if p.at(token.Colon) {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return source.NoStringID, ast.NoExprID, false
			}
			return p.arenas.Strings.Intern(identTok.Text), value, true
		}
		expr := p.arenas.Exprs.NewIdent(identTok.Span, p.arenas.Strings.Intern(identTok.Text))
		value, ok := p.parsePostfix(expr)
		if !ok {
			return source.NoStringID, ast.NoExprID, false
		}
		return source.NoStringID, value, true
	}

	value, ok := p.parseExpr()
	if !ok {
		return source.NoStringID, ast.NoExprID, false
	}
	return source.NoStringID, value, true
}

// parseClosure parses '{' expr* '}'.
func (p *Parser) parseClosure() (ast.ExprID, bool) {
	opening, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open closure")
	if !ok {
		return ast.NoExprID, false
	}
	var body []ast.ExprID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		body = append(body, expr)
	}
	closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close closure")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewClosure(opening.Span.Cover(closing.Span), body), true
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return source.Span{}
}
