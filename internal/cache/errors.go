package cache

import "fmt"

// IOError wraps a filesystem failure while reading or writing the cache.
// It is distinct from network errors so callers can tell a broken local disk
// apart from a broken mirror: both bootstrap documents are required, so an
// IOError at startup is fatal.
type IOError struct {
	// Op names the failing operation ("mkdir", "read", "write", "stat").
	Op string

	// Path is the cache file or directory involved.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *IOError) Unwrap() error {
	return e.Err
}
