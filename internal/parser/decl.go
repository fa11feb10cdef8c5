package parser

import (
	"strings"

	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/source"
	"viewmacro/internal/token"
)

// parseDecl parses one declaration with its leading attributes:
//
//	attr* ('struct'|'class'|'enum'|'actor'|'protocol') Ident '{' member* '}'
//	attr* 'extension' TypeName '{' member* '}'
func (p *Parser) parseDecl() (ast.DeclID, bool) {
	attrs, ok := p.parseAttrs()
	if !ok {
		return ast.NoDeclID, false
	}

	start := p.lx.Peek().Span

	var kind ast.DeclKind
	switch p.lx.Peek().Kind {
	case token.KwStruct:
		kind = ast.DeclStruct
	case token.KwClass:
		kind = ast.DeclClass
	case token.KwEnum:
		kind = ast.DeclEnum
	case token.KwActor:
		kind = ast.DeclActor
	case token.KwExtension:
		kind = ast.DeclExtension
	case token.KwProtocol:
		kind = ast.DeclProtocol
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected declaration, got \""+p.lx.Peek().Text+"\"")
		return ast.NoDeclID, false
	}
	if len(attrs) > 0 {
		start = p.arenas.Attrs.Get(attrs[0]).Span
	}
	p.advance()

	decl := ast.Decl{Kind: kind, Attrs: attrs}
	if kind == ast.DeclExtension {
		extended, ok := p.parseTypeName()
		if !ok {
			return ast.NoDeclID, false
		}
		decl.Extended = extended
	} else {
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoDeclID, false
		}
		decl.Name = name
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open declaration body"); !ok {
		return ast.NoDeclID, false
	}

	members, ok := p.parseMembers()
	if !ok {
		return ast.NoDeclID, false
	}
	decl.Members = members

	closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close declaration body")
	if !ok {
		return ast.NoDeclID, false
	}

	decl.Span = start.Cover(closing.Span)
	return p.arenas.Decls.New(decl), true
}

// parseAttrs parses zero or more leading attributes:
//
//	'@' Ident ['(' attrArg (',' attrArg)* ')']
func (p *Parser) parseAttrs() ([]ast.AttrID, bool) {
	var attrs []ast.AttrID
	for p.at(token.At) {
		atTok := p.advance()

		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected attribute name after '@'")
		if !ok {
			return nil, false
		}
		attr := ast.Attr{
			Name: p.arenas.Strings.Intern(nameTok.Text),
			Span: atTok.Span.Cover(nameTok.Span),
		}

		if p.at(token.LParen) {
			p.advance()
			args, ok := p.parseAttrArgs()
			if !ok {
				return nil, false
			}
			closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close attribute arguments")
			if !ok {
				return nil, false
			}
			attr.Args = args
			attr.Span = attr.Span.Cover(closing.Span)
		}

		attrs = append(attrs, p.arenas.Attrs.New(attr))
	}
	return attrs, true
}

func (p *Parser) parseAttrArgs() ([]ast.AttrArg, bool) {
	var args []ast.AttrArg
	for !p.at(token.RParen) && !p.at(token.EOF) {
		label, value, ok := p.parseLabeledExpr()
		if !ok {
			return nil, false
		}
		args = append(args, ast.AttrArg{Label: label, Value: value})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return args, true
}

// parseTypeName parses a dotted type reference and interns its joined text.
func (p *Parser) parseTypeName() (source.StringID, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name")
	if !ok {
		return source.NoStringID, false
	}
	var sb strings.Builder
	sb.WriteString(first.Text)
	for p.at(token.Dot) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name after '.'")
		if !ok {
			return source.NoStringID, false
		}
		sb.WriteByte('.')
		sb.WriteString(seg.Text)
	}
	return p.arenas.Strings.Intern(sb.String()), true
}
