package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"viewmacro/internal/diag"
	"viewmacro/internal/source"
)

// SourceExt is the extension of expandable source files.
const SourceExt = ".vx"

// Options configures a directory run.
type Options struct {
	MaxDiagnostics int
	Jobs           int        // 0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
	Sink           Sink       // nil disables progress events
}

func (o *Options) sink() Sink {
	if o.Sink == nil {
		return NopSink{}
	}
	return o.Sink
}

// ListSourceFiles returns the sorted *.vx files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every *.vx file under dir in parallel. Results come back
// in the sorted file order regardless of completion order. Files that fail
// to load produce a result carrying an I/O diagnostic instead of failing the
// whole run.
func ExpandDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	sink := opts.sink()
	sink.Publish(Event{Stage: StageLoad, Total: len(files)})

	// Loading mutates the FileSet, so it happens up front on one goroutine;
	// workers then only read it.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*FileResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFile, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = &FileResult{Path: path, Bag: bag}
			} else {
				result, err := expandCached(fileSet, fileIDs[path], path, opts)
				if err != nil {
					return err
				}
				results[i] = result
			}

			sink.Publish(Event{
				Stage: StageExpand,
				Path:  path,
				Done:  int(done.Add(1)),
				Total: len(files),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	sink.Publish(Event{Stage: StageDone, Done: len(files), Total: len(files)})
	return fileSet, results, nil
}

// expandCached consults the disk cache before doing real work. Cache entries
// are keyed by content hash, so a stale entry cannot match.
func expandCached(fileSet *source.FileSet, fileID source.FileID, path string, opts Options) (*FileResult, error) {
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		if result, ok := opts.Cache.Lookup(file.Hash, path, fileID, opts.MaxDiagnostics); ok {
			return result, nil
		}
	}

	result, err := expandLoaded(fileSet, fileID, path, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		// Best effort: a failed store never fails the run.
		_ = opts.Cache.Store(file.Hash, result)
	}
	return result, nil
}
