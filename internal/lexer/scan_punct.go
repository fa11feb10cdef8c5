package lexer

import (
	"viewmacro/internal/token"
)

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	b := lx.cursor.Peek()
	switch b {
	case '@':
		lx.cursor.Bump()
		return emit(token.At)
	case '(':
		lx.cursor.Bump()
		return emit(token.LParen)
	case ')':
		lx.cursor.Bump()
		return emit(token.RParen)
	case '{':
		lx.cursor.Bump()
		return emit(token.LBrace)
	case '}':
		lx.cursor.Bump()
		return emit(token.RBrace)
	case '.':
		lx.cursor.Bump()
		return emit(token.Dot)
	case ',':
		lx.cursor.Bump()
		return emit(token.Comma)
	case ':':
		lx.cursor.Bump()
		return emit(token.Colon)
	case '=':
		lx.cursor.Bump()
		return emit(token.Assign)
	}

	if b < utf8RuneSelf {
		lx.cursor.Bump()
		tok := emit(token.Invalid)
		lx.report("unknown-char", tok.Span, "character cannot start a token")
		return tok
	}
	return lx.scanInvalidRune()
}
