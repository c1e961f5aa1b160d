// Package preview implements the dry-run mode of purge: a parallel
// walk that tallies everything a real deletion would remove without
// touching the tree.
package preview

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/jamesainslie/purge/pkg/purge/engine"
	"github.com/jamesainslie/purge/pkg/purge/logging"
)

// Progress reports real-time preview progress.
type Progress struct {
	// Files is the number of files tallied so far.
	Files int64

	// Dirs is the number of directories tallied so far.
	Dirs int64

	// Bytes is the total size of tallied files so far.
	Bytes int64

	// Errors is the number of unreadable entries so far.
	Errors int64

	// CurrentPath is the path currently being visited.
	CurrentPath string
}

// Result contains the aggregated outcome of a preview.
type Result struct {
	// Files is the number of files a real run would delete.
	Files int64

	// Dirs is the number of directories a real run would remove,
	// including the root.
	Dirs int64

	// Bytes is the total size of all tallied files.
	Bytes int64

	// Errors is the number of entries that could not be examined.
	Errors int64

	// Elapsed is the total time taken by the walk.
	Elapsed time.Duration
}

// Options configures a preview scan.
type Options struct {
	// Root is the directory to preview. It must exist and be a
	// directory, same as for the deletion engine.
	Root string

	// OnProgress, if set, receives throttled progress updates.
	OnProgress func(Progress)
}

// Scanner tallies a directory tree using fastwalk.
type Scanner struct {
	opts Options

	// Atomic counters for thread-safe progress reporting.
	files  atomic.Int64
	dirs   atomic.Int64
	bytes  atomic.Int64
	errors atomic.Int64

	// currentPath is the path currently being visited (for progress).
	currentPath atomic.Value

	// lastProgress tracks when progress was last reported to avoid
	// excessive callbacks.
	lastProgress atomic.Int64

	logger *logging.Logger
}

// New creates a new preview Scanner with the given options.
func New(opts Options) *Scanner {
	s := &Scanner{
		opts:   opts,
		logger: logging.Get("preview"),
	}
	s.currentPath.Store("")
	return s
}

// Scan walks the tree and returns the tally. The root is validated the
// same way the deletion engine validates it, so a preview fails exactly
// when the real run would.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	info, err := os.Stat(s.opts.Root)
	if err != nil {
		return nil, &engine.AccessError{Path: s.opts.Root, Err: err}
	}
	if !info.IsDir() {
		return nil, &engine.InvalidTargetError{Path: s.opts.Root}
	}

	conf := fastwalk.Config{
		Follow: false, // Don't follow symlinks.
	}

	walkErr := fastwalk.Walk(&conf, s.opts.Root, s.walkCallback(ctx))
	if walkErr != nil && !errors.Is(walkErr, context.Canceled) {
		return nil, walkErr
	}

	s.reportProgressForce()

	return &Result{
		Files:   s.files.Load(),
		Dirs:    s.dirs.Load(),
		Bytes:   s.bytes.Load(),
		Errors:  s.errors.Load(),
		Elapsed: time.Since(startTime),
	}, nil
}

// walkCallback returns the callback function for fastwalk.Walk.
func (s *Scanner) walkCallback(ctx context.Context) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		// Unreadable entries count exactly like the engine counts
		// them: one error, walk continues.
		if err != nil {
			s.errors.Add(1)
			s.logger.Debug("preview error", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			s.dirs.Add(1)
			s.currentPath.Store(path)
			s.reportProgress()
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.errors.Add(1)
			return nil
		}

		s.files.Add(1)
		s.bytes.Add(info.Size())
		s.reportProgress()

		return nil
	}
}

// reportProgress calls the progress callback if configured.
// Throttles calls to avoid excessive overhead.
func (s *Scanner) reportProgress() {
	if s.opts.OnProgress == nil {
		return
	}

	// Throttle progress updates to every 10ms.
	now := time.Now().UnixMilli()
	last := s.lastProgress.Load()
	if now-last < 10 {
		return
	}
	if !s.lastProgress.CompareAndSwap(last, now) {
		return // Another goroutine updated it.
	}

	s.sendProgress()
}

// reportProgressForce calls the progress callback immediately, bypassing throttle.
func (s *Scanner) reportProgressForce() {
	if s.opts.OnProgress == nil {
		return
	}
	s.lastProgress.Store(time.Now().UnixMilli())
	s.sendProgress()
}

// sendProgress sends the current progress to the callback.
func (s *Scanner) sendProgress() {
	currentPath, _ := s.currentPath.Load().(string)

	s.opts.OnProgress(Progress{
		Files:       s.files.Load(),
		Dirs:        s.dirs.Load(),
		Bytes:       s.bytes.Load(),
		Errors:      s.errors.Load(),
		CurrentPath: currentPath,
	})
}
