package lexer

import (
	"golang.org/x/text/unicode/norm"

	"viewmacro/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies it via LookupKeyword.
// Keywords are case-sensitive. Token.Text is the source slice, except that
// non-ASCII identifiers are NFC-normalized so that visually equal names
// compare equal everywhere downstream.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}

	ascii := true
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if b >= utf8RuneSelf {
				ascii = false
				break
			}
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		ascii = false
		if !isIdentStartRune(r) {
			return lx.scanInvalidRune()
		}
	}

	if !ascii {
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 {
				break
			}
			if r2 < utf8RuneSelf {
				if !isIdentContinueByte(byte(r2)) {
					break
				}
				lx.cursor.Bump()
				continue
			}
			if !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := string(lex)
	if !ascii {
		text = norm.NFC.String(text)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanInvalidRune consumes one rune that cannot start any token.
func (lx *Lexer) scanInvalidRune() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report("unknown-char", sp, "character cannot start a token")
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
