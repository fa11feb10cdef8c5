package token

import "viewmacro/internal/source"

// TriviaKind classifies non-semantic source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	default:
		return "Unknown"
	}
}

// Trivia is one run of whitespace or comment text preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
