package ast

import (
	"strings"

	"viewmacro/internal/source"
)

// RenderExpr prints an expression back to canonical source text. Used for
// attribute-argument rendering and debug dumps; trivia is not preserved.
func (b *Builder) RenderExpr(id ExprID) string {
	var sb strings.Builder
	b.renderExpr(&sb, id)
	return sb.String()
}

func (b *Builder) renderExpr(sb *strings.Builder, id ExprID) {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ExprIdent:
		data, _ := b.Exprs.Ident(id)
		sb.WriteString(b.Name(data.Name))

	case ExprMember:
		data, _ := b.Exprs.Member(id)
		b.renderExpr(sb, data.Base)
		sb.WriteByte('.')
		sb.WriteString(b.Name(data.Name))

	case ExprImplicitMember:
		data, _ := b.Exprs.ImplicitMember(id)
		sb.WriteByte('.')
		sb.WriteString(b.Name(data.Name))

	case ExprCall:
		data, _ := b.Exprs.Call(id)
		b.renderExpr(sb, data.Callee)
		// An empty argument list next to a trailing closure renders without
		// parentheses, matching how such calls are written.
		if len(data.Args) > 0 || !data.Trailing.IsValid() {
			sb.WriteByte('(')
			for i, arg := range data.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				if arg.Label != source.NoStringID {
					sb.WriteString(b.Name(arg.Label))
					sb.WriteString(": ")
				}
				b.renderExpr(sb, arg.Value)
			}
			sb.WriteByte(')')
		}
		if data.Trailing.IsValid() {
			sb.WriteByte(' ')
			b.renderExpr(sb, data.Trailing)
		}

	case ExprClosure:
		data, _ := b.Exprs.Closure(id)
		sb.WriteString("{ ")
		for i, e := range data.Body {
			if i > 0 {
				sb.WriteString("; ")
			}
			b.renderExpr(sb, e)
		}
		sb.WriteString(" }")

	case ExprLit:
		data, _ := b.Exprs.Literal(id)
		sb.WriteString(b.Name(data.Value))
	}
}
