// Package engine implements the recursive traversal-and-delete core of
// purge. It empties a directory tree depth-first, children before
// parents, recording every outcome in a shared stats accumulator
// instead of aborting on per-entry failures.
package engine

import (
	"os"
	"path/filepath"

	"github.com/jamesainslie/purge/pkg/purge/logging"
	"github.com/jamesainslie/purge/pkg/purge/stats"
)

// EventKind identifies the type of a traversal event.
type EventKind int

// Traversal event kinds.
const (
	// EventFileDeleted is emitted after a file is removed.
	EventFileDeleted EventKind = iota
	// EventDirDeleted is emitted after a directory is removed.
	EventDirDeleted
	// EventError is emitted for every recoverable failure.
	EventError
)

// Event describes a single traversal outcome for progress reporting.
type Event struct {
	// Kind is the event type.
	Kind EventKind

	// Path is the file or directory the event concerns.
	Path string

	// Size is the byte length of a deleted file; zero for directories
	// and errors.
	Size int64

	// Err is the underlying failure for EventError, nil otherwise.
	Err error
}

// Options configures an Engine.
type Options struct {
	// Verbose enables per-operation debug logging.
	Verbose bool

	// OnEvent, if set, is called for every deleted file, deleted
	// directory, and recoverable error. It runs on the traversal
	// goroutine and must not block.
	OnEvent func(Event)
}

// Engine deletes a directory tree bottom-up. It holds no mutable
// traversal state; all per-call state lives on the stack of Delete.
// One Engine serves one run and is then queried for its stats.
type Engine struct {
	stats   *stats.Stats
	verbose bool
	onEvent func(Event)
	logger  *logging.Logger
}

// New creates an Engine with a fresh stats accumulator.
func New(opts Options) *Engine {
	return &Engine{
		stats:   stats.New(),
		verbose: opts.Verbose,
		onEvent: opts.OnEvent,
		logger:  logging.Get("engine"),
	}
}

// Stats returns the engine's accumulator. Read it after Delete returns
// to produce a summary.
func (e *Engine) Stats() *stats.Stats {
	return e.stats
}

// Delete validates root, recursively empties it children-first, then
// removes the now-empty root itself.
//
// Only validation can fail the run: a missing or unreadable root
// returns *AccessError, a non-directory root returns
// *InvalidTargetError, and in both cases the accumulator is left
// untouched. Every failure past validation is recorded in the stats
// and the traversal carries on with the next sibling.
func (e *Engine) Delete(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &AccessError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &InvalidTargetError{Path: root}
	}

	e.logVerbose("deletion started", "root", root)

	e.deleteContents(root)

	// All descendants are gone (or recorded as errors); the root is
	// removed like any other directory.
	e.removeDir(root)

	e.logVerbose("deletion finished", "root", root)
	return nil
}

// deleteContents empties a single directory: files at this level
// first, then each subdirectory recursively followed by the
// subdirectory itself. Post-order is load-bearing: os.Remove only
// succeeds on empty directories.
func (e *Engine) deleteContents(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unlistable directories count as one error and are treated
		// as empty so the rest of the run proceeds.
		e.recordError(dir, err)
		return
	}

	type fileEntry struct {
		path string
		size int64
	}
	var files []fileEntry
	var subdirs []string

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			// Unclassifiable entries are skipped: neither deleted
			// nor recursed into.
			e.recordError(path, err)
			continue
		}

		if info.IsDir() {
			subdirs = append(subdirs, path)
		} else {
			files = append(files, fileEntry{path: path, size: info.Size()})
		}
	}

	for _, f := range files {
		e.removeFile(f.path, f.size)
	}

	for _, sub := range subdirs {
		e.deleteContents(sub)
		e.removeDir(sub)
	}
}

// removeFile deletes a single file and updates the accumulator.
func (e *Engine) removeFile(path string, size int64) {
	if err := os.Remove(path); err != nil {
		e.recordError(path, err)
		return
	}

	e.stats.IncrementFiles()
	e.stats.AddBytes(size)
	e.emit(Event{Kind: EventFileDeleted, Path: path, Size: size})
	e.logVerbose("deleted file", "path", path, "size", size)
}

// removeDir deletes a single empty directory and updates the
// accumulator. A directory left non-empty by earlier failures fails
// here and is counted as one more error.
func (e *Engine) removeDir(path string) {
	if err := os.Remove(path); err != nil {
		e.recordError(path, err)
		return
	}

	e.stats.IncrementDirs()
	e.emit(Event{Kind: EventDirDeleted, Path: path})
	e.logVerbose("deleted directory", "path", path)
}

// recordError folds a recoverable failure into the accumulator.
func (e *Engine) recordError(path string, err error) {
	e.stats.IncrementErrors()
	e.emit(Event{Kind: EventError, Path: path, Err: err})
	e.logVerbose("operation failed", "path", path, "error", err)
}

// emit calls the event sink if one is configured.
func (e *Engine) emit(ev Event) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

// logVerbose writes a debug line when verbose mode is enabled.
func (e *Engine) logVerbose(msg string, args ...interface{}) {
	if e.verbose {
		e.logger.Debug(msg, args...)
	}
}
