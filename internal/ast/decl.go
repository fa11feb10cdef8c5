package ast

import (
	"viewmacro/internal/source"
)

// DeclKind tags the declaration form.
type DeclKind uint8

const (
	DeclStruct DeclKind = iota
	DeclClass
	DeclEnum
	DeclActor
	DeclExtension
	DeclProtocol
)

var declKindNames = [...]string{
	DeclStruct:    "struct",
	DeclClass:     "class",
	DeclEnum:      "enum",
	DeclActor:     "actor",
	DeclExtension: "extension",
	DeclProtocol:  "protocol",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "unknown"
}

// Decl is one declaration: kind, name (extensions carry the extended type
// name instead), attributes, and an ordered member list.
type Decl struct {
	Kind     DeclKind
	Name     source.StringID // NoStringID for extensions
	Extended source.StringID // extended type name; extensions only
	Attrs    []AttrID
	Members  []MemberID
	Span     source.Span
}

// Decls manages allocation of declarations.
type Decls struct {
	Arena *Arena[Decl]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Decls{Arena: NewArena[Decl](capHint)}
}

func (d *Decls) New(decl Decl) DeclID {
	return DeclID(d.Arena.Allocate(decl))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}
