package internal

import "fmt"

// StorageError represents errors accessing the environment database
type StorageError struct {
	Path string
	Op   string // "open", "migrate", "read", "write"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ResolveError represents errors computing a metadata default
type ResolveError struct {
	BundleType string
	Key        string
	Err        error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve error [%s] %s: %v", e.BundleType, e.Key, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
