package lexer

import (
	"viewmacro/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token:
//   - runs of spaces/tabs coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - // ... up to \n     -> TriviaLineComment
//   - /* ... */ (nesting) -> TriviaBlockComment; unterminated is reported
//     and truncated at EOF
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanCommentIntoHold handles // and /* */; returns false when the slash is
// not a comment opener (the cursor is restored).
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}

	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			b0, b1, ok := lx.cursor.Peek2()
			switch {
			case ok && b0 == '/' && b1 == '*':
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
			case ok && b0 == '*' && b1 == '/':
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
			default:
				lx.cursor.Bump()
			}
		}
		if depth > 0 {
			lx.report("unterminated-block-comment", lx.cursor.SpanFrom(start),
				"block comment is not terminated")
		}
		lx.pushTrivia(token.TriviaBlockComment, start)
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
