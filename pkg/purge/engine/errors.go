package engine

import "fmt"

// AccessError indicates the root path could not be read or stated at
// all. It is fatal: no traversal is attempted.
type AccessError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// InvalidTargetError indicates the root path exists but is not a
// directory. It is fatal: no traversal is attempted.
type InvalidTargetError struct {
	Path string
}

// Error returns the error message.
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("not a directory: %q", e.Path)
}
