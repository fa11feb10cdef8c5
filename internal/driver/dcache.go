package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"viewmacro/internal/diag"
	"viewmacro/internal/macro"
	"viewmacro/internal/source"
)

// Bump when the payload layout changes; stale entries then miss cleanly.
const diskCacheSchemaVersion uint16 = 1

// DiskCache memoizes per-file expansion outcomes on disk, keyed by the
// file's content hash. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskPayload is the serialized expansion outcome of one file. It carries
// everything needed to replay diagnostics and generated declarations without
// re-parsing; the AST itself is not cached.
type diskPayload struct {
	Schema      uint16
	Generated   []generatedPayload
	Diagnostics []diagnosticPayload
}

type generatedPayload struct {
	DeclName string
	TypeName string
}

type diagnosticPayload struct {
	Domain   string
	ID       string
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
}

// OpenDiskCache initializes the cache at the standard user location,
// honoring XDG_CACHE_HOME.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Store writes a file result to the cache. Load failures are never cached.
func (c *DiskCache) Store(key [32]byte, result *FileResult) error {
	if c == nil || result == nil {
		return nil
	}

	payload := diskPayload{Schema: diskCacheSchemaVersion}
	for _, g := range result.Generated {
		payload.Generated = append(payload.Generated, generatedPayload{
			DeclName: g.DeclName,
			TypeName: g.Method.TypeName,
		})
	}
	for _, d := range result.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, diagnosticPayload{
			Domain:   d.Code.Domain,
			ID:       d.Code.ID,
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic swap, so readers never observe a half-written entry.
	return os.Rename(f.Name(), p)
}

// Lookup replays a cached result for the given content hash. The replayed
// result carries diagnostics and generated declarations but no AST. A miss,
// a schema mismatch, or a corrupt entry returns ok=false.
func (c *DiskCache) Lookup(key [32]byte, path string, fileID source.FileID, maxDiagnostics int) (*FileResult, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diagnostics {
		bag.Add(diag.New(
			diag.Severity(d.Severity),
			diag.Code{Domain: d.Domain, ID: d.ID},
			source.Span{File: fileID, Start: d.Start, End: d.End},
			d.Message,
		))
	}

	result := &FileResult{Path: path, FileID: fileID, Bag: bag}
	for _, g := range payload.Generated {
		result.Generated = append(result.Generated, ExpandedDecl{
			DeclName: g.DeclName,
			Method:   macro.GeneratedDecl{TypeName: g.TypeName},
		})
	}
	return result, true
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
