package lexer

import (
	"testing"

	"viewmacro/internal/source"
	"viewmacro/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vx", []byte(src))
	return Tokenize(fs.Get(id), Options{})
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeAttributeAndStruct(t *testing.T) {
	toks := tokenize(t, "@ViewAction(for: Feature.state)\nstruct FeatureView {}")

	want := []token.Kind{
		token.At, token.Ident, token.LParen, token.Ident, token.Colon,
		token.Ident, token.Dot, token.Ident, token.RParen,
		token.KwStruct, token.Ident, token.LBrace, token.RBrace,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if toks[1].Text != "ViewAction" {
		t.Fatalf("attr name text = %q", toks[1].Text)
	}
	if toks[5].Text != "Feature" || toks[7].Text != "state" {
		t.Fatalf("argument texts = %q, %q", toks[5].Text, toks[7].Text)
	}
}

func TestTokenizeKeywordsAndSelf(t *testing.T) {
	toks := tokenize(t, "var let func self store enum class actor extension protocol case")

	want := []token.Kind{
		token.KwVar, token.KwLet, token.KwFunc, token.KwSelf, token.Ident,
		token.KwEnum, token.KwClass, token.KwActor, token.KwExtension,
		token.KwProtocol, token.KwCase, token.EOF,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLeadingTriviaAttachesToNextToken(t *testing.T) {
	toks := tokenize(t, "// header\n/* block */ struct A {}")

	if toks[0].Kind != token.KwStruct {
		t.Fatalf("first significant token = %v", toks[0].Kind)
	}
	var sawLine, sawBlock bool
	for _, tr := range toks[0].Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			sawLine = true
		case token.TriviaBlockComment:
			sawBlock = true
		}
	}
	if !sawLine || !sawBlock {
		t.Fatalf("leading trivia = %+v", toks[0].Leading)
	}
}

func TestUnterminatedBlockCommentReported(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vx", []byte("/* never closed"))

	var reports []string
	rep := reporterFunc(func(kind string, _ source.Span, _ string) {
		reports = append(reports, kind)
	})
	toks := Tokenize(fs.Get(id), Options{Reporter: rep})

	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("missing EOF token")
	}
	if len(reports) != 1 || reports[0] != "unterminated-block-comment" {
		t.Fatalf("reports = %v", reports)
	}
}

func TestNonASCIIIdentifierNormalized(t *testing.T) {
	// "e" + combining acute (NFD) must intern the same text as the
	// precomposed form.
	nfd := "cafe\u0301"
	toks := tokenize(t, nfd)
	if toks[0].Kind != token.Ident {
		t.Fatalf("kind = %v", toks[0].Kind)
	}
	if toks[0].Text != "caf\u00e9" {
		t.Fatalf("text = %q, want NFC form", toks[0].Text)
	}
}

func TestInvalidCharacter(t *testing.T) {
	toks := tokenize(t, "struct A { $ }")
	var sawInvalid bool
	for _, tok := range toks {
		if tok.Kind == token.Invalid && tok.Text == "$" {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Fatalf("no invalid token for '$': %v", kinds(toks))
	}
}

type reporterFunc func(kind string, span source.Span, msg string)

func (f reporterFunc) Report(kind string, span source.Span, msg string) {
	f(kind, span, msg)
}
