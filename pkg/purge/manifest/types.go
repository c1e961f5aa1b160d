// Package manifest provides run history logging for purge operations.
package manifest

import "time"

// OperationType represents the type of operation.
type OperationType string

const (
	// OpDelete represents a real deletion run.
	OpDelete OperationType = "delete"
	// OpPreview represents a dry-run preview.
	OpPreview OperationType = "preview"
)

// Entry represents a single recorded run.
type Entry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Operation OperationType `json:"operation"`
	Root      string        `json:"root"`
	Summary   Summary       `json:"summary"`
}

// Summary contains the run outcome.
type Summary struct {
	FilesDeleted int64         `json:"files_deleted"`
	DirsDeleted  int64         `json:"dirs_deleted"`
	Errors       int64         `json:"errors"`
	BytesFreed   int64         `json:"bytes_freed"`
	Duration     time.Duration `json:"duration"`
}
