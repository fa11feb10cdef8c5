package macro

import (
	"viewmacro/internal/ast"
)

// hasStoreBinding scans only the direct member list (not recursively) for a
// stored property named 'store'. The declared type of the binding is not
// verified: the check is name-based, matching the caller-visible contract of
// the generated code rather than providing type safety.
func hasStoreBinding(b *ast.Builder, decl *ast.Decl) bool {
	for _, memberID := range decl.Members {
		binding, ok := b.Members.Binding(memberID)
		if !ok {
			continue
		}
		if b.Name(binding.Name) == StorePropertyName {
			return true
		}
	}
	return false
}

// DisplayName extracts the name used in diagnostics and expansion listings.
// Named type declarations report their identifier, extensions report the
// extended type, every other kind reports no name.
func DisplayName(b *ast.Builder, decl *ast.Decl) string {
	switch decl.Kind {
	case ast.DeclStruct, ast.DeclClass, ast.DeclEnum, ast.DeclProtocol:
		return b.Name(decl.Name)
	case ast.DeclExtension:
		return b.Name(decl.Extended)
	default:
		return ""
	}
}
