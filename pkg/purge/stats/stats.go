// Package stats provides the shared counter set tracking the outcome
// of a single purge run. One Stats is created per run and shared by
// reference across every recursive deletion call.
package stats

import "sync/atomic"

// Stats accumulates deletion outcomes. All counters are atomic, so the
// accumulator stays correct if sibling processing is ever parallelized.
// Counters only ever increase for the lifetime of a run.
type Stats struct {
	filesDeleted atomic.Int64
	dirsDeleted  atomic.Int64
	errors       atomic.Int64
	bytesFreed   atomic.Int64
}

// New creates a fresh accumulator with all counters at zero.
func New() *Stats {
	return &Stats{}
}

// IncrementFiles records one successfully deleted file.
func (s *Stats) IncrementFiles() {
	s.filesDeleted.Add(1)
}

// IncrementDirs records one successfully removed directory.
func (s *Stats) IncrementDirs() {
	s.dirsDeleted.Add(1)
}

// IncrementErrors records one recoverable failure.
func (s *Stats) IncrementErrors() {
	s.errors.Add(1)
}

// AddBytes adds the size of a deleted file to the freed-bytes total.
func (s *Stats) AddBytes(n int64) {
	s.bytesFreed.Add(n)
}

// Snapshot is a point-in-time copy of all counters.
// Each field is read independently; cross-field consistency is only
// guaranteed once all mutating work has finished.
type Snapshot struct {
	FilesDeleted int64 `json:"files_deleted"`
	DirsDeleted  int64 `json:"dirs_deleted"`
	Errors       int64 `json:"errors"`
	BytesFreed   int64 `json:"bytes_freed"`
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		FilesDeleted: s.filesDeleted.Load(),
		DirsDeleted:  s.dirsDeleted.Load(),
		Errors:       s.errors.Load(),
		BytesFreed:   s.bytesFreed.Load(),
	}
}
