package ast

import (
	"viewmacro/internal/source"
)

type ExprKind uint8

const (
	// ExprIdent is a plain identifier reference (`store`, `self`).
	ExprIdent ExprKind = iota
	// ExprMember is `<base>.<name>`.
	ExprMember
	// ExprImplicitMember is a leading-dot member with no base (`.view`).
	ExprImplicitMember
	// ExprCall is `<callee>(args...)`, optionally with a trailing closure.
	ExprCall
	// ExprClosure is a braced block of expression statements.
	ExprClosure
	// ExprLit is an integer or string literal.
	ExprLit
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprMemberData struct {
	Base ExprID
	Name source.StringID
}

type ExprImplicitMemberData struct {
	Name source.StringID
}

// CallArg is one (optionally labeled) call argument.
type CallArg struct {
	Label source.StringID // NoStringID when unlabeled
	Value ExprID
}

type ExprCallData struct {
	Callee   ExprID
	Args     []CallArg
	Trailing ExprID // closure after the argument list, NoExprID if absent
}

type ExprClosureData struct {
	Body []ExprID
}

type ExprLitKind uint8

const (
	LitInt ExprLitKind = iota
	LitString
)

type ExprLiteralData struct {
	LitKind ExprLitKind
	Value   source.StringID
}
