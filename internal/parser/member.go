package parser

import (
	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/source"
	"viewmacro/internal/token"
)

// parseMembers consumes a member list up to the closing '}'. Failed members
// resync locally so one bad member does not poison the rest of the body.
func (p *Parser) parseMembers() ([]ast.MemberID, bool) {
	var members []ast.MemberID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		memberID, ok := p.parseMember()
		if !ok {
			if p.opts.Enough() {
				return members, false
			}
			p.resyncMember()
			continue
		}
		members = append(members, memberID)
	}
	return members, true
}

func (p *Parser) parseMember() (ast.MemberID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwVar, token.KwLet:
		return p.parseBinding()
	case token.KwFunc:
		return p.parseFunc()
	case token.KwCase:
		return p.parseCase()
	default:
		if isDeclStarter(p.lx.Peek().Kind) {
			return p.parseNested()
		}
		p.err(diag.SynUnexpectedToken, "expected member declaration, got \""+p.lx.Peek().Text+"\"")
		return ast.NoMemberID, false
	}
}

func (p *Parser) resyncMember() {
	p.resyncUntil(token.RBrace, token.KwVar, token.KwLet, token.KwFunc,
		token.KwCase, token.At, token.KwStruct, token.KwClass, token.KwEnum,
		token.KwActor, token.KwExtension, token.KwProtocol)
}

// parseBinding parses a stored property:
//
//	('var'|'let') Ident [':' TypeName] ['=' expr]
func (p *Parser) parseBinding() (ast.MemberID, bool) {
	intro := p.advance()
	data := ast.BindingData{IsLet: intro.Kind == token.KwLet}

	name, ok := p.parseIdent()
	if !ok {
		return ast.NoMemberID, false
	}
	data.Name = name
	end := p.lastSpan

	if p.at(token.Colon) {
		p.advance()
		typeName, ok := p.parseTypeName()
		if !ok {
			return ast.NoMemberID, false
		}
		data.TypeName = typeName
		end = p.lastSpan
	}

	if p.at(token.Assign) {
		p.advance()
		init, ok := p.parseExpr()
		if !ok {
			return ast.NoMemberID, false
		}
		data.Init = init
		end = p.arenas.Exprs.Get(init).Span
	}

	return p.arenas.Members.NewBinding(intro.Span.Cover(end), data), true
}

// parseFunc parses a method:
//
//	'func' Ident '(' param (',' param)* ')' '{' expr* '}'
func (p *Parser) parseFunc() (ast.MemberID, bool) {
	intro := p.advance()

	name, ok := p.parseIdent()
	if !ok {
		return ast.NoMemberID, false
	}
	data := ast.FuncData{Name: name}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after method name"); !ok {
		return ast.NoMemberID, false
	}
	params, ok := p.parseParams()
	if !ok {
		return ast.NoMemberID, false
	}
	data.Params = params
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return ast.NoMemberID, false
	}

	body, closing, ok := p.parseBlock()
	if !ok {
		return ast.NoMemberID, false
	}
	data.Body = body

	return p.arenas.Members.NewFunc(intro.Span.Cover(closing), data), true
}

// parseParams parses the parameter list between parentheses:
//
//	[label] name ':' TypeName
func (p *Parser) parseParams() ([]ast.Param, bool) {
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		first, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return nil, false
		}
		param := ast.Param{Span: first.Span}

		if p.at(token.Ident) {
			// Two identifiers: external label plus internal name.
			nameTok := p.advance()
			param.Label = p.arenas.Strings.Intern(first.Text)
			param.Name = p.arenas.Strings.Intern(nameTok.Text)
			param.Span = param.Span.Cover(nameTok.Span)
		} else {
			// Single identifier doubles as both.
			id := p.arenas.Strings.Intern(first.Text)
			param.Label = id
			param.Name = id
		}

		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
			return nil, false
		}
		typeName, ok := p.parseTypeName()
		if !ok {
			return nil, false
		}
		param.TypeName = typeName
		param.Span = param.Span.Cover(p.lastSpan)

		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return params, true
}

// parseCase parses an enum case:
//
//	'case' Ident ['=' expr]
func (p *Parser) parseCase() (ast.MemberID, bool) {
	intro := p.advance()

	name, ok := p.parseIdent()
	if !ok {
		return ast.NoMemberID, false
	}
	data := ast.CaseData{Name: name}
	end := p.lastSpan

	if p.at(token.Assign) {
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return ast.NoMemberID, false
		}
		data.Value = value
		end = p.arenas.Exprs.Get(value).Span
	}

	return p.arenas.Members.NewCase(intro.Span.Cover(end), data), true
}

// parseNested parses a declaration appearing inside a member list.
func (p *Parser) parseNested() (ast.MemberID, bool) {
	declID, ok := p.parseDecl()
	if !ok {
		return ast.NoMemberID, false
	}
	span := p.arenas.Decls.Get(declID).Span
	return p.arenas.Members.NewNested(span, declID), true
}

// parseBlock parses '{' expr* '}' and returns the body along with the span
// of the closing brace.
func (p *Parser) parseBlock() ([]ast.ExprID, source.Span, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open body"); !ok {
		return nil, source.Span{}, false
	}
	var body []ast.ExprID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			return nil, source.Span{}, false
		}
		body = append(body, expr)
	}
	closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close body")
	if !ok {
		return nil, source.Span{}, false
	}
	return body, closing.Span, true
}
