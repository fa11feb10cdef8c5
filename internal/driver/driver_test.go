package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"viewmacro/internal/diag"
)

const goodSource = `
@ViewAction(for: Feature.state)
struct FeatureView {
    var store: Store

    func body() {
        store.send(.tap)
    }
}
`

const noStoreSource = `
@ViewAction(for: Feature.state)
struct FeatureView {
    var count: Int
}
`

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExpandFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "feature.vx", goodSource)

	_, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}

	if len(result.Generated) != 1 {
		t.Fatalf("generated = %d, want 1", len(result.Generated))
	}
	g := result.Generated[0]
	if g.DeclName != "FeatureView" {
		t.Errorf("decl name = %q", g.DeclName)
	}
	if g.Method.TypeName != "Feature" {
		t.Errorf("type name = %q", g.Method.TypeName)
	}

	// The direct store.send in the body is the only diagnostic.
	if result.Bag.Len() != 1 {
		t.Fatalf("diagnostics = %d: %+v", result.Bag.Len(), result.Bag.Items())
	}
	d := result.Bag.Items()[0]
	if d.Severity != diag.SevWarning || d.Code.ID != "hasDirectStoreDotSend" {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestExpandFileNestedAnnotationsReportSiteOnce(t *testing.T) {
	src := `
@ViewAction(for: Parent.state)
struct ParentView {
    var store: Store

    @ViewAction(for: Child.state)
    struct ChildView {
        var store: Store

        func body() {
            store.send(.tap)
        }
    }
}
`
	path := writeSource(t, t.TempDir(), "feature.vx", src)

	_, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}

	// Both declarations expand.
	if len(result.Generated) != 2 {
		t.Fatalf("generated = %d, want 2", len(result.Generated))
	}

	// The outer scan recurses into the nested declaration and the nested
	// declaration scans itself, but the single store.send site must surface
	// exactly once in the file's diagnostics.
	warnings := 0
	for _, d := range result.Bag.Items() {
		if d.Code.ID == "hasDirectStoreDotSend" {
			warnings++
		}
	}
	if warnings != 1 {
		t.Fatalf("hasDirectStoreDotSend warnings = %d, want 1: %+v",
			warnings, result.Bag.Items())
	}
}

func TestExpandFileMissingStore(t *testing.T) {
	path := writeSource(t, t.TempDir(), "feature.vx", noStoreSource)

	_, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}
	if len(result.Generated) != 0 {
		t.Fatalf("generated = %d, want 0", len(result.Generated))
	}
	if !result.Bag.HasErrors() || result.Bag.Len() != 1 {
		t.Fatalf("diagnostics = %+v", result.Bag.Items())
	}
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.vx", goodSource)
	writeSource(t, dir, "a.vx", noStoreSource)
	writeSource(t, dir, "notes.txt", "not a source file")

	sink := NewChannelSink(64)
	_, results, err := ExpandDir(context.Background(), dir, Options{
		MaxDiagnostics: 100,
		Sink:           sink,
	})
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	sink.Close()

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "a.vx" || filepath.Base(results[1].Path) != "b.vx" {
		t.Fatalf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Errorf("a.vx must carry the missing-store error")
	}
	if len(results[1].Generated) != 1 {
		t.Errorf("b.vx generated = %d, want 1", len(results[1].Generated))
	}

	sawDone := false
	for e := range sink.C {
		if e.Stage == StageDone {
			sawDone = true
			if e.Done != 2 || e.Total != 2 {
				t.Errorf("done event = %+v", e)
			}
		}
	}
	if !sawDone {
		t.Errorf("no StageDone event published")
	}
}

func TestExpandDirEmpty(t *testing.T) {
	_, results, err := ExpandDir(context.Background(), t.TempDir(), Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("viewmacro-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	dir := t.TempDir()
	path := writeSource(t, dir, "feature.vx", goodSource)

	fs, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}
	key := fs.Get(result.FileID).Hash

	if _, ok := cache.Lookup(key, path, result.FileID, 100); ok {
		t.Fatalf("lookup hit before store")
	}
	if err := cache.Store(key, result); err != nil {
		t.Fatalf("Store: %v", err)
	}

	replayed, ok := cache.Lookup(key, path, result.FileID, 100)
	if !ok {
		t.Fatalf("lookup miss after store")
	}
	if len(replayed.Generated) != 1 || replayed.Generated[0].Method.TypeName != "Feature" {
		t.Fatalf("replayed generated = %+v", replayed.Generated)
	}
	if replayed.Bag.Len() != result.Bag.Len() {
		t.Fatalf("replayed diagnostics = %d, want %d", replayed.Bag.Len(), result.Bag.Len())
	}
	got, want := replayed.Bag.Items()[0], result.Bag.Items()[0]
	if got.Code != want.Code || got.Message != want.Message || got.Primary.Start != want.Primary.Start {
		t.Fatalf("replayed diagnostic differs: %+v vs %+v", got, want)
	}

	var otherKey [32]byte
	otherKey[0] = 0xFF
	if _, ok := cache.Lookup(otherKey, path, result.FileID, 100); ok {
		t.Fatalf("lookup hit for unrelated key")
	}
}

func TestExpandDirUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("viewmacro-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	dir := t.TempDir()
	writeSource(t, dir, "feature.vx", goodSource)
	opts := Options{MaxDiagnostics: 100, Cache: cache}

	_, first, err := ExpandDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	_, second, err := ExpandDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if second[0].Builder != nil {
		t.Fatalf("second run must replay from cache without an AST")
	}
	if len(first[0].Generated) != len(second[0].Generated) {
		t.Fatalf("cached run diverges: %d vs %d generated",
			len(first[0].Generated), len(second[0].Generated))
	}
	if first[0].Bag.Len() != second[0].Bag.Len() {
		t.Fatalf("cached run diverges: %d vs %d diagnostics",
			first[0].Bag.Len(), second[0].Bag.Len())
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("viewmacro-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	dir := t.TempDir()
	path := writeSource(t, dir, "feature.vx", goodSource)
	fs, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}
	key := fs.Get(result.FileID).Hash

	if err := cache.Store(key, result); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok := cache.Lookup(key, path, result.FileID, 100); ok {
		t.Fatalf("lookup hit after DropAll")
	}

	// Dropping an already-empty cache must not fail.
	if err := cache.DropAll(); err != nil {
		t.Fatalf("second DropAll: %v", err)
	}
}

func TestWriteExpansion(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "feature.vx", goodSource)

	_, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}

	outPath, err := WriteExpansion(result)
	if err != nil {
		t.Fatalf("WriteExpansion: %v", err)
	}
	if outPath != filepath.Join(dir, "feature.expanded.vx") {
		t.Fatalf("output path = %q", outPath)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "// FeatureView") {
		t.Errorf("missing decl header:\n%s", text)
	}
	if !strings.Contains(text, "func send(action: Feature.Action.View) {") {
		t.Errorf("missing generated method:\n%s", text)
	}
	if !strings.Contains(text, "self.store.send(.view(action))") {
		t.Errorf("missing forwarding body:\n%s", text)
	}
}

func TestWriteExpansionSkipsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "plain.vx", "struct Plain { var x: Int }")

	_, result, err := ExpandFile(path, 100)
	if err != nil {
		t.Fatalf("ExpandFile: %v", err)
	}
	outPath, err := WriteExpansion(result)
	if err != nil {
		t.Fatalf("WriteExpansion: %v", err)
	}
	if outPath != "" {
		t.Fatalf("expected no output, got %q", outPath)
	}
}
