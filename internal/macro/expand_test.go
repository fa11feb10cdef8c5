package macro

import (
	"testing"

	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/source"
)

// declSpec assembles an annotated declaration for expansion tests.
type declSpec struct {
	kind     ast.DeclKind
	name     string
	extended string
	argExprs func(b *ast.Builder) []ast.AttrArg
	members  func(b *ast.Builder) []ast.MemberID
}

func featureStateArg(b *ast.Builder) []ast.AttrArg {
	feature := b.Exprs.NewIdent(source.Span{}, b.Strings.Intern("Feature"))
	state := b.Exprs.NewMember(source.Span{}, feature, b.Strings.Intern("state"))
	return []ast.AttrArg{{Label: b.Strings.Intern("for"), Value: state}}
}

func storeBinding(b *ast.Builder) ast.MemberID {
	return b.Members.NewBinding(source.Span{}, ast.BindingData{
		Name:     b.Strings.Intern("store"),
		TypeName: b.Strings.Intern("Store"),
	})
}

func build(t *testing.T, spec declSpec) (*ast.Builder, ast.DeclID, ast.AttrID) {
	t.Helper()
	b := ast.NewBuilder(ast.Hints{})

	var args []ast.AttrArg
	if spec.argExprs != nil {
		args = spec.argExprs(b)
	}
	attrID := b.Attrs.New(ast.Attr{
		Name: b.Strings.Intern(AttributeName),
		Args: args,
		Span: source.Span{Start: 0, End: 10},
	})

	var members []ast.MemberID
	if spec.members != nil {
		members = spec.members(b)
	}

	decl := ast.Decl{
		Kind:    spec.kind,
		Attrs:   []ast.AttrID{attrID},
		Members: members,
	}
	if spec.name != "" {
		decl.Name = b.Strings.Intern(spec.name)
	}
	if spec.extended != "" {
		decl.Extended = b.Strings.Intern(spec.extended)
	}
	declID := b.Decls.New(decl)
	return b, declID, attrID
}

func expand(t *testing.T, spec declSpec) ([]GeneratedDecl, *diag.Bag) {
	t.Helper()
	b, declID, attrID := build(t, spec)
	bag := diag.NewBag(100)
	generated := Expand(b, declID, attrID, diag.BagReporter{Bag: bag})
	return generated, bag
}

func TestMissingStoreFailsWithOneError(t *testing.T) {
	generated, bag := expand(t, declSpec{
		kind:     ast.DeclStruct,
		name:     "FeatureView",
		argExprs: featureStateArg,
	})

	if len(generated) != 0 {
		t.Fatalf("generated = %d, want 0", len(generated))
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want exactly 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevError {
		t.Fatalf("severity = %v", d.Severity)
	}
	if d.Code != (diag.Code{Domain: diag.DomainMacro, ID: "noStoreVariable"}) {
		t.Fatalf("code = %v", d.Code)
	}
	want := "'@ViewAction' requires 'FeatureView' to have a 'store' property of type 'Store'"
	if d.Message != want {
		t.Fatalf("message = %q", d.Message)
	}
	if d.Primary != (source.Span{Start: 0, End: 10}) {
		t.Fatalf("diagnostic must anchor at the attribute, got %v", d.Primary)
	}
}

func TestMissingStoreDisplayNames(t *testing.T) {
	cases := []struct {
		name string
		spec declSpec
		want string
	}{
		{
			name: "extension reports extended type",
			spec: declSpec{kind: ast.DeclExtension, extended: "FeatureView"},
			want: "'@ViewAction' requires 'FeatureView' to have a 'store' property of type 'Store'",
		},
		{
			name: "actor reports no name",
			spec: declSpec{kind: ast.DeclActor, name: "FeatureActor"},
			want: "'@ViewAction' requires a 'store' property of type 'Store'",
		},
		{
			name: "protocol reports identifier",
			spec: declSpec{kind: ast.DeclProtocol, name: "ViewProtocol"},
			want: "'@ViewAction' requires 'ViewProtocol' to have a 'store' property of type 'Store'",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, bag := expand(t, tc.spec)
			if bag.Len() != 1 {
				t.Fatalf("diagnostics = %d", bag.Len())
			}
			if got := bag.Items()[0].Message; got != tc.want {
				t.Fatalf("message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSuccessfulExpansionGeneratesSend(t *testing.T) {
	generated, bag := expand(t, declSpec{
		kind:     ast.DeclStruct,
		name:     "FeatureView",
		argExprs: featureStateArg,
		members: func(b *ast.Builder) []ast.MemberID {
			return []ast.MemberID{storeBinding(b)}
		},
	})

	if bag.Len() != 0 {
		t.Fatalf("diagnostics = %d, want 0", bag.Len())
	}
	if len(generated) != 1 {
		t.Fatalf("generated = %d, want 1", len(generated))
	}
	g := generated[0]
	if g.ParamType() != "Feature.Action.View" {
		t.Fatalf("param type = %q", g.ParamType())
	}
	want := "func send(action: Feature.Action.View) {\n    self.store.send(.view(action))\n}"
	if g.Render() != want {
		t.Fatalf("render =\n%s\nwant:\n%s", g.Render(), want)
	}
}

func TestLetStoreBindingSatisfiesInvariant(t *testing.T) {
	generated, bag := expand(t, declSpec{
		kind:     ast.DeclClass,
		name:     "FeatureView",
		argExprs: featureStateArg,
		members: func(b *ast.Builder) []ast.MemberID {
			return []ast.MemberID{
				b.Members.NewBinding(source.Span{}, ast.BindingData{
					IsLet: true,
					Name:  b.Strings.Intern("store"),
					// Untyped on purpose: the check is by name only.
				}),
			}
		},
	})

	if bag.Len() != 0 || len(generated) != 1 {
		t.Fatalf("diags = %d, generated = %d", bag.Len(), len(generated))
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	spec := declSpec{
		kind:     ast.DeclStruct,
		name:     "FeatureView",
		argExprs: featureStateArg,
		members: func(b *ast.Builder) []ast.MemberID {
			store := storeBinding(b)
			body := b.Members.NewFunc(source.Span{}, ast.FuncData{
				Name: b.Strings.Intern("body"),
				Body: []ast.ExprID{newStoreSend(b, 40)},
			})
			return []ast.MemberID{store, body}
		},
	}

	b, declID, attrID := build(t, spec)
	run := func() ([]GeneratedDecl, []diag.Diagnostic) {
		bag := diag.NewBag(100)
		gen := Expand(b, declID, attrID, diag.BagReporter{Bag: bag})
		return gen, bag.Items()
	}

	gen1, diags1 := run()
	gen2, diags2 := run()

	if len(gen1) != len(gen2) || len(gen1) != 1 || gen1[0] != gen2[0] {
		t.Fatalf("generated decls differ across runs: %v vs %v", gen1, gen2)
	}
	if len(diags1) != len(diags2) {
		t.Fatalf("diagnostic counts differ: %d vs %d", len(diags1), len(diags2))
	}
	for i := range diags1 {
		d1, d2 := diags1[i], diags2[i]
		if d1.Code != d2.Code || d1.Message != d2.Message || d1.Primary != d2.Primary {
			t.Fatalf("diagnostic %d differs: %+v vs %+v", i, d1, d2)
		}
	}
}

// newStoreSend builds `store.send(.increment)` with distinct spans so tests
// can tell occurrences apart.
func newStoreSend(b *ast.Builder, at uint32) ast.ExprID {
	sp := source.Span{Start: at, End: at + 10}
	store := b.Exprs.NewIdent(sp, b.Strings.Intern("store"))
	send := b.Exprs.NewMember(sp, store, b.Strings.Intern("send"))
	inc := b.Exprs.NewImplicitMember(sp, b.Strings.Intern("increment"))
	return b.Exprs.NewCall(sp, send, []ast.CallArg{{Value: inc}}, ast.NoExprID)
}
