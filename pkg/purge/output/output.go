// Package output provides formatters for displaying purge run
// summaries in various output formats (pretty, plain, json, yaml).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Summary contains the aggregated outcome of one purge run.
type Summary struct {
	// FilesDeleted is the number of files removed.
	FilesDeleted int64 `json:"files_deleted" yaml:"files_deleted"`

	// DirsDeleted is the number of directories removed.
	DirsDeleted int64 `json:"dirs_deleted" yaml:"dirs_deleted"`

	// Errors is the number of recoverable failures recorded.
	Errors int64 `json:"errors" yaml:"errors"`

	// BytesFreed is the total size of all removed files in bytes.
	BytesFreed int64 `json:"bytes_freed" yaml:"bytes_freed"`

	// Duration is the wall-clock time of the run, measured by the caller.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// BytesHuman returns the freed bytes formatted with IEC units.
func (s Summary) BytesHuman() string {
	return humanize.IBytes(uint64(s.BytesFreed))
}

// Result contains the complete output data for formatting.
type Result struct {
	// Root is the directory that was deleted.
	Root string `json:"root" yaml:"root"`

	// DryRun indicates the run was a preview and nothing was removed.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Summary contains the run statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Warnings contains human-readable notes about recoverable failures.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
