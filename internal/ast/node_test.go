package ast

import (
	"testing"

	"viewmacro/internal/source"
)

// buildSendCall assembles `store.send(.view(action))` and returns the call
// and its member-access callee.
func buildSendCall(b *Builder) (call, callee ExprID) {
	sp := source.Span{}
	store := b.Exprs.NewIdent(sp, b.Strings.Intern("store"))
	callee = b.Exprs.NewMember(sp, store, b.Strings.Intern("send"))
	view := b.Exprs.NewImplicitMember(sp, b.Strings.Intern("view"))
	action := b.Exprs.NewIdent(sp, b.Strings.Intern("action"))
	payload := b.Exprs.NewCall(sp, view, []CallArg{{Value: action}}, NoExprID)
	call = b.Exprs.NewCall(sp, callee, []CallArg{{Value: payload}}, NoExprID)
	return call, callee
}

func TestChildrenOfCall(t *testing.T) {
	b := NewBuilder(Hints{})
	call, callee := buildSendCall(b)

	kids := b.Children(ExprNode(call))
	if len(kids) != 2 {
		t.Fatalf("call children = %d, want 2", len(kids))
	}
	if kids[0].Expr != callee {
		t.Fatalf("first child = %v, want callee %v", kids[0].Expr, callee)
	}
}

func TestChildrenOfDeclIncludeAttrArgsAndMembers(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{}

	feature := b.Exprs.NewIdent(sp, b.Strings.Intern("Feature"))
	arg := b.Exprs.NewMember(sp, feature, b.Strings.Intern("state"))
	attr := b.Attrs.New(Attr{
		Name: b.Strings.Intern("ViewAction"),
		Args: []AttrArg{{Label: b.Strings.Intern("for"), Value: arg}},
	})

	binding := b.Members.NewBinding(sp, BindingData{
		Name:     b.Strings.Intern("store"),
		TypeName: b.Strings.Intern("Store"),
	})

	decl := b.Decls.New(Decl{
		Kind:    DeclStruct,
		Name:    b.Strings.Intern("FeatureView"),
		Attrs:   []AttrID{attr},
		Members: []MemberID{binding},
	})

	kids := b.Children(DeclNode(decl))
	if len(kids) != 2 {
		t.Fatalf("decl children = %d, want 2 (attr arg + member)", len(kids))
	}
	if kids[0].Class != NodeExpr || kids[0].Expr != arg {
		t.Fatalf("first child should be the attribute argument, got %+v", kids[0])
	}
	if kids[1].Class != NodeMember || kids[1].Member != binding {
		t.Fatalf("second child should be the binding, got %+v", kids[1])
	}
}

func TestChildrenOfNestedDecl(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{}

	inner := b.Decls.New(Decl{Kind: DeclEnum, Name: b.Strings.Intern("Inner")})
	nested := b.Members.NewNested(sp, inner)

	kids := b.Children(MemberNode(nested))
	if len(kids) != 1 || kids[0].Class != NodeDecl || kids[0].Decl != inner {
		t.Fatalf("nested children = %+v", kids)
	}
}

func TestRenderExpr(t *testing.T) {
	b := NewBuilder(Hints{})
	call, callee := buildSendCall(b)

	if got := b.RenderExpr(callee); got != "store.send" {
		t.Fatalf("callee = %q", got)
	}
	if got := b.RenderExpr(call); got != "store.send(.view(action))" {
		t.Fatalf("call = %q", got)
	}
}

func TestRenderLabeledCallAndClosure(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{}

	lit := b.Exprs.NewLiteral(sp, LitInt, b.Strings.Intern("42"))
	inc := b.Exprs.NewImplicitMember(sp, b.Strings.Intern("setCount"))
	payload := b.Exprs.NewCall(sp, inc, []CallArg{{Label: b.Strings.Intern("to"), Value: lit}}, NoExprID)
	closure := b.Exprs.NewClosure(sp, []ExprID{payload})
	onTap := b.Exprs.NewIdent(sp, b.Strings.Intern("onTap"))
	call := b.Exprs.NewCall(sp, onTap, nil, closure)

	if got := b.RenderExpr(call); got != "onTap { .setCount(to: 42) }" {
		t.Fatalf("render = %q", got)
	}
}

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must be invalid")
	}
	id := a.Allocate(7)
	if id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}
	if *a.Get(id) != 7 {
		t.Fatalf("value = %d", *a.Get(id))
	}
}
