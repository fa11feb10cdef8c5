package ast

import (
	"viewmacro/internal/source"
)

// MemberKind tags one entry of a declaration's member list.
type MemberKind uint8

const (
	// MemberBinding is a stored property (`var`/`let` binding).
	MemberBinding MemberKind = iota
	// MemberFunc is a method declaration.
	MemberFunc
	// MemberNested is a nested declaration.
	MemberNested
	// MemberCase is an enum case.
	MemberCase
)

type Member struct {
	Kind    MemberKind
	Span    source.Span
	Payload PayloadID
}

// BindingData describes a stored property. TypeName is the declared type's
// rendered text, NoStringID when the binding is untyped.
type BindingData struct {
	IsLet    bool
	Name     source.StringID
	TypeName source.StringID
	Init     ExprID // NoExprID without initializer
}

// Param is one function parameter: `label name: Type` with the label
// defaulting to the name.
type Param struct {
	Label    source.StringID
	Name     source.StringID
	TypeName source.StringID
	Span     source.Span
}

// FuncData describes a method: name, parameters, and a body of expression
// statements.
type FuncData struct {
	Name   source.StringID
	Params []Param
	Body   []ExprID
}

// NestedData wraps a declaration appearing in a member list.
type NestedData struct {
	Decl DeclID
}

// CaseData describes one enum case. Value is the raw value expression,
// NoExprID when absent.
type CaseData struct {
	Name  source.StringID
	Value ExprID
}

// Members manages allocation of declaration members.
type Members struct {
	Arena    *Arena[Member]
	Bindings *Arena[BindingData]
	Funcs    *Arena[FuncData]
	Nested   *Arena[NestedData]
	Cases    *Arena[CaseData]
}

func NewMembers(capHint uint) *Members {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Members{
		Arena:    NewArena[Member](capHint),
		Bindings: NewArena[BindingData](capHint),
		Funcs:    NewArena[FuncData](capHint),
		Nested:   NewArena[NestedData](capHint),
		Cases:    NewArena[CaseData](capHint),
	}
}

func (m *Members) new(kind MemberKind, span source.Span, payload PayloadID) MemberID {
	return MemberID(m.Arena.Allocate(Member{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (m *Members) Get(id MemberID) *Member {
	return m.Arena.Get(uint32(id))
}

// NewBinding creates a stored-property member.
func (m *Members) NewBinding(span source.Span, data BindingData) MemberID {
	payload := m.Bindings.Allocate(data)
	return m.new(MemberBinding, span, PayloadID(payload))
}

// Binding returns the binding data for the given member ID.
func (m *Members) Binding(id MemberID) (*BindingData, bool) {
	member := m.Get(id)
	if member == nil || member.Kind != MemberBinding {
		return nil, false
	}
	return m.Bindings.Get(uint32(member.Payload)), true
}

// NewFunc creates a method member.
func (m *Members) NewFunc(span source.Span, data FuncData) MemberID {
	payload := m.Funcs.Allocate(data)
	return m.new(MemberFunc, span, PayloadID(payload))
}

// Func returns the method data for the given member ID.
func (m *Members) Func(id MemberID) (*FuncData, bool) {
	member := m.Get(id)
	if member == nil || member.Kind != MemberFunc {
		return nil, false
	}
	return m.Funcs.Get(uint32(member.Payload)), true
}

// NewNested creates a nested-declaration member.
func (m *Members) NewNested(span source.Span, decl DeclID) MemberID {
	payload := m.Nested.Allocate(NestedData{Decl: decl})
	return m.new(MemberNested, span, PayloadID(payload))
}

// NestedDecl returns the nested declaration for the given member ID.
func (m *Members) NestedDecl(id MemberID) (DeclID, bool) {
	member := m.Get(id)
	if member == nil || member.Kind != MemberNested {
		return NoDeclID, false
	}
	return m.Nested.Get(uint32(member.Payload)).Decl, true
}

// NewCase creates an enum-case member.
func (m *Members) NewCase(span source.Span, data CaseData) MemberID {
	payload := m.Cases.Allocate(data)
	return m.new(MemberCase, span, PayloadID(payload))
}

// Case returns the enum-case data for the given member ID.
func (m *Members) Case(id MemberID) (*CaseData, bool) {
	member := m.Get(id)
	if member == nil || member.Kind != MemberCase {
		return nil, false
	}
	return m.Cases.Get(uint32(member.Payload)), true
}
