package macro

import (
	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
)

// Scan walks every descendant node of the declaration in pre-order and
// reports each direct 'store.send' access. The walk uses an explicit stack,
// so declaration depth is bounded by the heap, not the goroutine stack.
//
// Two shapes are flagged:
//
//	store.send         (base is the plain identifier)
//	<expr>.store.send  (base reaches 'store' through a member chain)
//
// Matching nodes do not stop the walk; every occurrence is reported, nested
// declarations included.
func Scan(b *ast.Builder, declID ast.DeclID, r diag.Reporter) {
	stack := []ast.Node{ast.DeclNode(declID)}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Class == ast.NodeExpr && isDirectStoreSend(b, n.Expr) {
			diag.Emit(r, CaseHasDirectStoreDotSend.Render(b.Span(n), ""))
		}

		children := b.Children(n)
		// Reverse push keeps the pop order pre-order in source order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// isDirectStoreSend tests the two disallowed member-access shapes.
func isDirectStoreSend(b *ast.Builder, id ast.ExprID) bool {
	member, ok := b.Exprs.Member(id)
	if !ok || b.Name(member.Name) != SendMethodName {
		return false
	}

	// store.send
	if ident, ok := b.Exprs.Ident(member.Base); ok {
		if b.Name(ident.Name) == StorePropertyName {
			return true
		}
	}

	// <expr>.store.send
	if base, ok := b.Exprs.Member(member.Base); ok {
		if b.Name(base.Name) == StorePropertyName {
			return true
		}
	}

	return false
}
