package extract

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"
)

// defaultFilePattern matches PHP stub files anywhere under the corpus root.
const defaultFilePattern = "**.php"

// WalkerConfig controls which files a walk visits and how.
type WalkerConfig struct {
	// SkipDirs are directory names excluded from the walk. A file is skipped
	// when any segment of its path matches an entry exactly.
	SkipDirs []string

	// IncludeExtensions, when non-empty, restricts the walk to files whose
	// immediate parent directory name is on the list. phpstorm-stubs groups
	// stubs by PHP extension area, so this selects specific feature areas.
	IncludeExtensions []string

	// Workers is the number of concurrent extraction workers. Values below 2
	// select the sequential path. Results are identical either way because
	// merging is a commutative set union.
	Workers int
}

// Walker enumerates eligible files under a corpus root and drives the
// extractor across them, merging per-file results into one aggregate.
type Walker struct {
	root        string
	filePattern glob.Glob
	skipDirs    map[string]struct{}
	includeExts map[string]struct{}
	workers     int
	extractor   *Extractor
	progress    ProgressReporter
}

// NewWalker creates a walker rooted at root. A nil progress reporter is
// replaced with a no-op one.
func NewWalker(root string, cfg WalkerConfig, extractor *Extractor, progress ProgressReporter) (*Walker, error) {
	g, err := glob.Compile(defaultFilePattern, '/')
	if err != nil {
		return nil, fmt.Errorf("compiling file pattern: %w", err)
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	w := &Walker{
		root:        root,
		filePattern: g,
		skipDirs:    make(map[string]struct{}, len(cfg.SkipDirs)),
		includeExts: make(map[string]struct{}, len(cfg.IncludeExtensions)),
		workers:     cfg.Workers,
		extractor:   extractor,
		progress:    progress,
	}
	for _, d := range cfg.SkipDirs {
		w.skipDirs[d] = struct{}{}
	}
	for _, e := range cfg.IncludeExtensions {
		w.includeExts[e] = struct{}{}
	}
	return w, nil
}

// Walk discovers eligible files under the root and extracts symbols from
// each, returning the merged aggregate. Unreadable files are logged and
// contribute nothing; only discovery failures and context cancellation abort
// the walk.
func (w *Walker) Walk(ctx context.Context) (*Aggregate, error) {
	w.progress.OnDiscoveryStart()
	files, err := w.discover(ctx)
	if err != nil {
		return nil, err
	}
	w.progress.OnDiscoveryComplete(len(files))

	if w.workers > 1 {
		return w.walkParallel(ctx, files)
	}
	return w.walkSequential(ctx, files)
}

func (w *Walker) walkSequential(ctx context.Context, files []string) (*Aggregate, error) {
	agg := NewAggregate()
	warnings := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileAgg, err := w.extractor.ExtractFile(file)
		if err != nil {
			log.Printf("Warning: %v\n", err)
			warnings++
		} else {
			agg.Merge(fileAgg)
		}
		w.progress.OnFileProcessed(file)
	}
	w.progress.OnWalkComplete(len(files)-warnings, warnings)
	return agg, nil
}

// walkParallel shards the file list across workers. Each worker merges into
// its own aggregate; the partials are unioned once at the end, so the result
// matches the sequential walk.
func (w *Walker) walkParallel(ctx context.Context, files []string) (*Aggregate, error) {
	partials := make([]*Aggregate, w.workers)
	var warnings atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < w.workers; i++ {
		shard := i
		partials[shard] = NewAggregate()
		g.Go(func() error {
			for j := shard; j < len(files); j += w.workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				fileAgg, err := w.extractor.ExtractFile(files[j])
				if err != nil {
					log.Printf("Warning: %v\n", err)
					warnings.Add(1)
				} else {
					partials[shard].Merge(fileAgg)
				}
				w.progress.OnFileProcessed(files[j])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := NewAggregate()
	for _, p := range partials {
		agg.Merge(p)
	}
	w.progress.OnWalkComplete(len(files)-int(warnings.Load()), int(warnings.Load()))
	return agg, nil
}

// discover returns the paths of all eligible files under the root.
func (w *Walker) discover(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			if _, skip := w.skipDirs[d.Name()]; skip && path != w.root {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if !w.filePattern.Match(relPath) {
			return nil
		}
		if w.hasSkippedSegment(relPath) {
			return nil
		}
		if len(w.includeExts) > 0 {
			parent := filepath.Base(filepath.Dir(path))
			if _, ok := w.includeExts[parent]; !ok {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering files under %s: %w", w.root, err)
	}
	return files, nil
}

// hasSkippedSegment reports whether any path segment exactly matches a
// skip-dir entry. The directory-level SkipDir above is a shortcut; this is
// the authoritative check.
func (w *Walker) hasSkippedSegment(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		if _, skip := w.skipDirs[segment]; skip {
			return true
		}
	}
	return false
}
