package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"viewmacro/internal/diag"
)

func TestJSONOutput(t *testing.T) {
	bag, fs, span := testBag(t)
	bag.Add(diag.NewWarning(
		diag.Code{Domain: diag.DomainMacro, ID: "hasDirectStoreDotSend"},
		span, "second"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON produced: %v", err)
	}

	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	first := out.Diagnostics[0]
	if first.Domain != diag.DomainParse || first.Code != "unexpectedToken" {
		t.Errorf("domain/code split: got %q %q", first.Domain, first.Code)
	}
	if first.Severity != "ERROR" {
		t.Errorf("severity: got %q", first.Severity)
	}
	if first.Location.File != "test.vx" {
		t.Errorf("file: got %q", first.Location.File)
	}
	if first.Location.StartLine != 2 || first.Location.StartCol != 5 {
		t.Errorf("position: got %d:%d", first.Location.StartLine, first.Location.StartCol)
	}
}

func TestJSONMaxTruncatesOutputOnly(t *testing.T) {
	bag, fs, span := testBag(t)
	bag.Add(diag.NewWarning(diag.SynUnexpectedToken, span, "second"))
	bag.Add(diag.NewWarning(diag.SynUnexpectedToken, span, "third"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	if bag.Len() != 3 {
		t.Fatalf("bag mutated: len = %d", bag.Len())
	}
}

func TestJSONOmitsPositionsUnlessAsked(t *testing.T) {
	bag, fs, _ := testBag(t)
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.EndLine != 0 {
		t.Fatalf("positions filled without IncludePositions: %+v", loc)
	}
	if loc.StartByte != 15 || loc.EndByte != 18 {
		t.Fatalf("byte offsets: %+v", loc)
	}
}
