package parser

import (
	"slices"

	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/lexer"
	"viewmacro/internal/source"
	"viewmacro/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached. Zero means
// unlimited.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser is the per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
}

// ParseFile parses one file into the builder's arenas. The lexer must be
// positioned at the start of the file.
func ParseFile(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseTopLevel()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseTopLevel loops declarations until EOF, resyncing after failures.
func (p *Parser) parseTopLevel() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		declID, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		p.arenas.PushDecl(p.file, declID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// resyncTop skips forward to the next plausible declaration start.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.At, token.KwStruct, token.KwClass, token.KwEnum,
		token.KwActor, token.KwExtension, token.KwProtocol)
}

// resyncUntil advances until the next token is one of kinds or EOF. The
// current token is always consumed, so resync makes progress even when the
// failing token is itself a stop token.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	if !p.at(token.EOF) {
		p.advance()
	}
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

func isDeclStarter(k token.Kind) bool {
	switch k {
	case token.At, token.KwStruct, token.KwClass, token.KwEnum,
		token.KwActor, token.KwExtension, token.KwProtocol:
		return true
	default:
		return false
	}
}

// parseIdent expects an identifier and interns it.
func (p *Parser) parseIdent() (source.StringID, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.Strings.Intern(tok.Text), true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, false
}
