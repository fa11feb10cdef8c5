package macro

import (
	"fmt"

	"viewmacro/internal/ast"
)

// GeneratedDecl is one synthesized method, ready for the host to insert into
// the annotated declaration's member list. Immutable once produced.
type GeneratedDecl struct {
	// TypeName is the feature type recovered from the attribute argument.
	TypeName string
}

// MethodName returns the fixed name of the generated method.
func (g GeneratedDecl) MethodName() string { return SendMethodName }

// ParamType returns the declared type of the generated method's parameter.
func (g GeneratedDecl) ParamType() string {
	return g.TypeName + ".Action.View"
}

// Render prints the generated method as source text.
func (g GeneratedDecl) Render() string {
	return fmt.Sprintf(
		"func %s(action: %s) {\n    self.%s.%s(.view(action))\n}",
		SendMethodName, g.ParamType(), StorePropertyName, SendMethodName)
}

// Synthesize derives the generated method from the attribute's argument
// list. It requires exactly one argument whose expression is a member access
// named 'state'; the feature type name is the rendered base sub-expression
// of that access. Every other argument list shape is an accepted no-op that
// yields an empty result, never a diagnostic, so the attribute stays usable
// without the generation feature.
func Synthesize(b *ast.Builder, attr *ast.Attr) []GeneratedDecl {
	if attr == nil || len(attr.Args) != 1 {
		return nil
	}

	member, ok := b.Exprs.Member(attr.Args[0].Value)
	if !ok {
		return nil
	}
	if b.Name(member.Name) != StateMemberName {
		return nil
	}

	// The type name is taken from the argument's structure, not by
	// stripping a fixed-length suffix off its text: a spelled-out base like
	// 'App.Feature' survives intact and a malformed argument cannot corrupt
	// the name.
	typeName := b.RenderExpr(member.Base)
	if typeName == "" {
		return nil
	}

	return []GeneratedDecl{{TypeName: typeName}}
}
