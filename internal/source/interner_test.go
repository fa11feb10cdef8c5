package source

import "testing"

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()

	a := in.Intern("store")
	b := in.Intern("store")
	if a != b {
		t.Fatalf("same string interned to %d and %d", a, b)
	}
	if a == NoStringID {
		t.Fatalf("non-empty string interned to NoStringID")
	}

	c := in.InternBytes([]byte("send"))
	if c == a {
		t.Fatalf("distinct strings share an ID")
	}

	if got := in.MustLookup(a); got != "store" {
		t.Fatalf("lookup = %q", got)
	}
	if got, ok := in.Lookup(StringID(999)); ok || got != "" {
		t.Fatalf("invalid ID lookup = %q, %v", got, ok)
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("empty string ID = %d, want %d", id, NoStringID)
	}
	if in.Len() != 1 {
		t.Fatalf("fresh interner len = %d, want 1", in.Len())
	}
}
