package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.vx", []byte("struct A {\n}\n"))

	f := fs.Get(id)
	if f.Path != "a.vx" {
		t.Fatalf("path = %q, want a.vx", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("virtual flag not set")
	}

	start, end := fs.Resolve(Span{File: id, Start: 11, End: 12})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start = %+v, want line 2 col 1", start)
	}
	if end.Line != 2 || end.Col != 2 {
		t.Fatalf("end = %+v, want line 2 col 2", end)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.vx")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("struct A {\r\n}\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	f := fs.Get(id)
	if string(f.Content) != "struct A {\n}\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %v, want BOM and CRLF flags", f.Flags)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("b.vx", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("cover = %+v", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cross-file cover must be a no-op, got %+v", got)
	}
}
