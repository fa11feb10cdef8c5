package lexer

import (
	"viewmacro/internal/token"
)

// scanNumber scans a decimal integer literal. Member bodies only ever carry
// simple payload literals, so there is no float or radix support.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IntLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanString scans a double-quoted string literal with \-escapes passed
// through verbatim. Unterminated strings are reported and truncated at the
// end of line or file.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if b == '"' {
			closed = true
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report("unterminated-string", sp, "string literal is not terminated")
	}
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
