// Package acquire obtains the stub corpus to scan: either a caller-supplied
// directory, or a shallow clone of the upstream stubs repository at a pinned
// branch into a run-owned scratch directory.
package acquire

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/google/uuid"
)

// AcquisitionError indicates the corpus could not be obtained. It is fatal:
// the run aborts before any file is scanned.
type AcquisitionError struct {
	Repo   string
	Branch string
	Err    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquiring %s@%s: %v", e.Repo, e.Branch, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Corpus is a directory of stub files plus the ownership needed to clean it
// up. A caller-supplied directory is never deleted; a cloned scratch
// directory is deleted by Release on every exit path.
type Corpus struct {
	root     string
	owned    bool
	released bool
}

// Root returns the corpus directory.
func (c *Corpus) Root() string {
	return c.root
}

// Owned reports whether this run created the directory and must delete it.
func (c *Corpus) Owned() bool {
	return c.owned
}

// Release deletes the scratch directory if this run owns it. Safe to call
// more than once.
func (c *Corpus) Release() error {
	if !c.owned || c.released {
		return nil
	}
	c.released = true
	log.Println("Cleaning up scratch directory...")
	if err := os.RemoveAll(c.root); err != nil {
		return fmt.Errorf("removing scratch directory %s: %w", c.root, err)
	}
	return nil
}

// Config pins the upstream repository to clone when no explicit corpus path
// is supplied.
type Config struct {
	RepoURL string
	Branch  string
	Timeout time.Duration
}

// Acquirer obtains a corpus per its pinned configuration.
type Acquirer struct {
	cfg Config
}

// New creates an acquirer for the configured repository.
func New(cfg Config) *Acquirer {
	return &Acquirer{cfg: cfg}
}

// Acquire returns the corpus to scan. When explicitPath is non-empty it must
// exist and is returned un-owned. Otherwise a scratch directory is created
// and the pinned branch is shallow-cloned into it; the returned corpus is
// owned and must be released by the caller.
func (a *Acquirer) Acquire(ctx context.Context, explicitPath string) (*Corpus, error) {
	if explicitPath != "" {
		info, err := os.Stat(explicitPath)
		if err != nil {
			return nil, &AcquisitionError{Repo: a.cfg.RepoURL, Branch: a.cfg.Branch, Err: err}
		}
		if !info.IsDir() {
			return nil, &AcquisitionError{
				Repo:   a.cfg.RepoURL,
				Branch: a.cfg.Branch,
				Err:    fmt.Errorf("%s is not a directory", explicitPath),
			}
		}
		return &Corpus{root: explicitPath, owned: false}, nil
	}

	scratch := filepath.Join(os.TempDir(), "phpstorm-stubs-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return nil, &AcquisitionError{Repo: a.cfg.RepoURL, Branch: a.cfg.Branch, Err: err}
	}

	log.Printf("Cloning %s (branch %s) to %s...\n", a.cfg.RepoURL, a.cfg.Branch, scratch)

	cloneCtx := ctx
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		cloneCtx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	_, err := gogit.PlainCloneContext(cloneCtx, scratch, false, &gogit.CloneOptions{
		URL:           a.cfg.RepoURL,
		ReferenceName: plumbing.NewBranchReferenceName(a.cfg.Branch),
		SingleBranch:  true,
		Depth:         1,
		Tags:          gogit.NoTags,
	})
	if err != nil {
		// The scratch directory never becomes an owned corpus on failure,
		// so it is removed here.
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			log.Printf("Warning: failed to remove scratch directory %s: %v\n", scratch, rmErr)
		}
		return nil, &AcquisitionError{Repo: a.cfg.RepoURL, Branch: a.cfg.Branch, Err: err}
	}

	return &Corpus{root: scratch, owned: true}, nil
}
