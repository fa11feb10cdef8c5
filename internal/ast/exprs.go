package ast

import (
	"viewmacro/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena           *Arena[Expr]
	Idents          *Arena[ExprIdentData]
	Members         *Arena[ExprMemberData]
	ImplicitMembers *Arena[ExprImplicitMemberData]
	Calls           *Arena[ExprCallData]
	Closures        *Arena[ExprClosureData]
	Literals        *Arena[ExprLiteralData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated to capHint;
// zero falls back to 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:           NewArena[Expr](capHint),
		Idents:          NewArena[ExprIdentData](capHint),
		Members:         NewArena[ExprMemberData](capHint),
		ImplicitMembers: NewArena[ExprImplicitMemberData](capHint),
		Calls:           NewArena[ExprCallData](capHint),
		Closures:        NewArena[ExprClosureData](capHint),
		Literals:        NewArena[ExprLiteralData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewMember creates a new member-access expression.
func (e *Exprs) NewMember(span source.Span, base ExprID, name source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Base: base, Name: name})
	return e.new(ExprMember, span, PayloadID(payload))
}

// Member returns the member-access data for the given expression ID.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewImplicitMember creates a new leading-dot member expression.
func (e *Exprs) NewImplicitMember(span source.Span, name source.StringID) ExprID {
	payload := e.ImplicitMembers.Allocate(ExprImplicitMemberData{Name: name})
	return e.new(ExprImplicitMember, span, PayloadID(payload))
}

// ImplicitMember returns the implicit-member data for the given expression ID.
func (e *Exprs) ImplicitMember(id ExprID) (*ExprImplicitMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprImplicitMember {
		return nil, false
	}
	return e.ImplicitMembers.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []CallArg, trailing ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args, Trailing: trailing})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewClosure creates a new closure expression.
func (e *Exprs) NewClosure(span source.Span, body []ExprID) ExprID {
	payload := e.Closures.Allocate(ExprClosureData{Body: body})
	return e.new(ExprClosure, span, PayloadID(payload))
}

// Closure returns the closure data for the given expression ID.
func (e *Exprs) Closure(id ExprID) (*ExprClosureData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClosure {
		return nil, false
	}
	return e.Closures.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{LitKind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}
