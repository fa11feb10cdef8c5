package ast

import (
	"viewmacro/internal/source"
)

type Hints struct{ Files, Decls, Members, Exprs uint }

// Builder owns the arenas for one parse and the string interner shared by
// every node in them.
type Builder struct {
	Files   *Files
	Decls   *Decls
	Members *Members
	Exprs   *Exprs
	Attrs   *Attrs
	Strings *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	return &Builder{
		Files:   NewFiles(hints.Files),
		Decls:   NewDecls(hints.Decls),
		Members: NewMembers(hints.Members),
		Exprs:   NewExprs(hints.Exprs),
		Attrs:   NewAttrs(0),
		Strings: source.NewInterner(),
	}
}

// PushDecl appends a top-level declaration to a file node.
func (b *Builder) PushDecl(file FileID, decl DeclID) {
	f := b.Files.Get(file)
	f.Decls = append(f.Decls, decl)
}

// Name resolves an interned string, returning "" for NoStringID.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
