package macro

import (
	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
)

// Expand runs one @ViewAction expansion over an annotated declaration.
//
// The result is either (a) a failed store check with exactly one error
// diagnostic anchored at the attribute and a nil result, or (b) a successful
// expansion with zero or more scanner warnings and zero or one generated
// declaration. Scanning and synthesis are independent effects of the single
// successful validation; neither aborts the other.
//
// Expand reads the builder as an immutable view and writes only through the
// reporter, so independent expansions may run concurrently.
func Expand(b *ast.Builder, declID ast.DeclID, attrID ast.AttrID, r diag.Reporter) []GeneratedDecl {
	decl := b.Decls.Get(declID)
	attr := b.Attrs.Get(attrID)
	if decl == nil || attr == nil {
		return nil
	}

	if !hasStoreBinding(b, decl) {
		// Anchor at the attribute, so the error surfaces at the macro site
		// rather than somewhere inside the declaration body.
		diag.Emit(r, CaseNoStoreVariable.Render(attr.Span, DisplayName(b, decl)))
		return nil
	}

	Scan(b, declID, r)
	return Synthesize(b, attr)
}

// FindAttr returns the declaration's @ViewAction attribute, if present.
func FindAttr(b *ast.Builder, decl *ast.Decl) (ast.AttrID, bool) {
	for _, attrID := range decl.Attrs {
		attr := b.Attrs.Get(attrID)
		if attr != nil && b.Name(attr.Name) == AttributeName {
			return attrID, true
		}
	}
	return ast.NoAttrID, false
}
