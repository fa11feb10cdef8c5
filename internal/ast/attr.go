package ast

import "viewmacro/internal/source"

// AttrArg is one (optionally labeled) attribute argument.
type AttrArg struct {
	Label source.StringID // NoStringID when unlabeled
	Value ExprID
}

// Attr describes a declaration attribute of the form `@name(args...)`.
type Attr struct {
	Name source.StringID
	Args []AttrArg
	Span source.Span
}

// Attrs manages allocation of attributes.
type Attrs struct {
	Arena *Arena[Attr]
}

func NewAttrs(capHint uint) *Attrs {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &Attrs{Arena: NewArena[Attr](capHint)}
}

func (a *Attrs) New(attr Attr) AttrID {
	return AttrID(a.Arena.Allocate(attr))
}

func (a *Attrs) Get(id AttrID) *Attr {
	return a.Arena.Get(uint32(id))
}
