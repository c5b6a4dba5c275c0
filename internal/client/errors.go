package client

import "fmt"

// ExhaustedError is returned by Get after every retry attempt has failed.
// It carries the URL and the number of attempts made so callers can report
// the failure precisely.
//
// Design decision: We use a struct error rather than a sentinel because the
// URL and attempt count are part of the failure, not decoration. Callers use
// errors.As to detect it.
type ExhaustedError struct {
	// URL is the request URL that kept failing.
	URL string

	// Attempts is the number of attempts made before giving up.
	Attempts int
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("fetch failed %d times for %s", e.Attempts, e.URL)
}
