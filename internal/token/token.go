package token

import (
	"viewmacro/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case At, LParen, RParen, LBrace, RBrace, Dot, Comma, Colon, Assign:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwStruct, KwClass, KwEnum, KwActor, KwExtension, KwProtocol,
		KwVar, KwLet, KwFunc, KwCase, KwSelf:
		return true
	default:
		return false
	}
}

// IsDeclKeyword reports whether the token starts a declaration.
func (t Token) IsDeclKeyword() bool {
	switch t.Kind {
	case KwStruct, KwClass, KwEnum, KwActor, KwExtension, KwProtocol:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
