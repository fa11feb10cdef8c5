package macro

import (
	"testing"

	"viewmacro/internal/ast"
	"viewmacro/internal/diag"
	"viewmacro/internal/source"
)

// scanDecl wraps a method body in a struct with a store property and runs
// the scanner over it.
func scanDecl(b *ast.Builder, body []ast.ExprID) *diag.Bag {
	decl := b.Decls.New(ast.Decl{
		Kind: ast.DeclStruct,
		Name: b.Strings.Intern("FeatureView"),
		Members: []ast.MemberID{
			storeBinding(b),
			b.Members.NewFunc(source.Span{}, ast.FuncData{
				Name: b.Strings.Intern("body"),
				Body: body,
			}),
		},
	})
	bag := diag.NewBag(100)
	Scan(b, decl, diag.BagReporter{Bag: bag})
	return bag
}

func TestScanFlagsBothAccessShapes(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	// store.send(.tap)
	direct := newStoreSend(b, 10)

	// self.store.send(.tap)
	sp := source.Span{Start: 30, End: 44}
	self := b.Exprs.NewIdent(sp, b.Strings.Intern("self"))
	selfStore := b.Exprs.NewMember(sp, self, b.Strings.Intern("store"))
	selfSend := b.Exprs.NewMember(sp, selfStore, b.Strings.Intern("send"))
	tap := b.Exprs.NewImplicitMember(sp, b.Strings.Intern("tap"))
	chained := b.Exprs.NewCall(sp, selfSend, []ast.CallArg{{Value: tap}}, ast.NoExprID)

	bag := scanDecl(b, []ast.ExprID{direct, chained})
	if bag.Len() != 2 {
		t.Fatalf("warnings = %d, want 2", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning {
			t.Fatalf("severity = %v, want warning", d.Severity)
		}
		if d.Code != (diag.Code{Domain: diag.DomainMacro, ID: "hasDirectStoreDotSend"}) {
			t.Fatalf("code = %v", d.Code)
		}
		want := "do not call 'store.send' directly when using '@ViewAction'; call 'send' instead"
		if d.Message != want {
			t.Fatalf("message = %q", d.Message)
		}
	}
}

func TestScanIgnoresNonMatchingAccesses(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{}

	// mystore.send: base identifier is not exactly 'store'.
	mystore := b.Exprs.NewIdent(sp, b.Strings.Intern("mystore"))
	mystoreSend := b.Exprs.NewMember(sp, mystore, b.Strings.Intern("send"))

	// store.dispatch: member is not 'send'.
	store := b.Exprs.NewIdent(sp, b.Strings.Intern("store"))
	dispatch := b.Exprs.NewMember(sp, store, b.Strings.Intern("dispatch"))

	// send(.tap): the blessed forwarding call.
	send := b.Exprs.NewIdent(sp, b.Strings.Intern("send"))
	tap := b.Exprs.NewImplicitMember(sp, b.Strings.Intern("tap"))
	blessed := b.Exprs.NewCall(sp, send, []ast.CallArg{{Value: tap}}, ast.NoExprID)

	bag := scanDecl(b, []ast.ExprID{mystoreSend, dispatch, blessed})
	if bag.Len() != 0 {
		t.Fatalf("warnings = %d, want 0: %v", bag.Len(), bag.Items())
	}
}

func TestScanReportsEveryOccurrenceWithoutDedup(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	body := []ast.ExprID{
		newStoreSend(b, 10),
		newStoreSend(b, 30),
		newStoreSend(b, 50),
	}
	bag := scanDecl(b, body)
	if bag.Len() != 3 {
		t.Fatalf("warnings = %d, want one per occurrence (3)", bag.Len())
	}

	spans := map[source.Span]bool{}
	for _, d := range bag.Items() {
		spans[d.Primary] = true
	}
	if len(spans) != 3 {
		t.Fatalf("distinct spans = %d, want 3", len(spans))
	}
}

func TestScanReachesNestedClosures(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{Start: 100, End: 120}

	// Button { withAnimation { store.send(.tap) } }
	inner := b.Exprs.NewClosure(sp, []ast.ExprID{newStoreSend(b, 105)})
	anim := b.Exprs.NewIdent(sp, b.Strings.Intern("withAnimation"))
	animCall := b.Exprs.NewCall(sp, anim, nil, inner)
	outer := b.Exprs.NewClosure(sp, []ast.ExprID{animCall})
	button := b.Exprs.NewIdent(sp, b.Strings.Intern("Button"))
	buttonCall := b.Exprs.NewCall(sp, button, nil, outer)

	bag := scanDecl(b, []ast.ExprID{buttonCall})
	if bag.Len() != 1 {
		t.Fatalf("warnings = %d, want exactly 1 for the closure-nested call", bag.Len())
	}
}

func TestScanRecursesIntoNestedDeclarations(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	innerDecl := b.Decls.New(ast.Decl{
		Kind: ast.DeclStruct,
		Name: b.Strings.Intern("Row"),
		Members: []ast.MemberID{
			b.Members.NewFunc(source.Span{}, ast.FuncData{
				Name: b.Strings.Intern("tap"),
				Body: []ast.ExprID{newStoreSend(b, 200)},
			}),
		},
	})
	outer := b.Decls.New(ast.Decl{
		Kind: ast.DeclStruct,
		Name: b.Strings.Intern("FeatureView"),
		Members: []ast.MemberID{
			storeBinding(b),
			b.Members.NewNested(source.Span{}, innerDecl),
		},
	})

	bag := diag.NewBag(100)
	Scan(b, outer, diag.BagReporter{Bag: bag})
	if bag.Len() != 1 {
		t.Fatalf("warnings = %d, want 1 from the nested declaration", bag.Len())
	}
}

func TestScanChecksBindingInitializers(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	decl := b.Decls.New(ast.Decl{
		Kind: ast.DeclStruct,
		Name: b.Strings.Intern("FeatureView"),
		Members: []ast.MemberID{
			storeBinding(b),
			b.Members.NewBinding(source.Span{}, ast.BindingData{
				IsLet: true,
				Name:  b.Strings.Intern("effect"),
				Init:  newStoreSend(b, 300),
			}),
		},
	})

	bag := diag.NewBag(100)
	Scan(b, decl, diag.BagReporter{Bag: bag})
	if bag.Len() != 1 {
		t.Fatalf("warnings = %d, want 1 from the initializer", bag.Len())
	}
}
