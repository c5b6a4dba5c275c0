package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and name the first invalid
// setting found.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic handling while still providing human-readable messages.
var (
	// ErrMissingURL is returned when either bootstrap document URL is empty.
	// Both documents are required to build the record store.
	ErrMissingURL = errors.New("missing document URL: metadata and assemblies URLs are both required")

	// ErrInvalidInterval is returned when the request interval is negative.
	// Zero is allowed and disables rate limiting (useful against local
	// test servers).
	ErrInvalidInterval = errors.New("invalid request interval: must be non-negative")

	// ErrInvalidMaxRetry is returned when the retry count is not positive.
	// Zero attempts would mean no request is ever made.
	ErrInvalidMaxRetry = errors.New("invalid max retry: must be positive")

	// ErrInvalidCacheTTL is returned when the cache staleness threshold is
	// not positive.
	ErrInvalidCacheTTL = errors.New("invalid cache TTL: must be positive")

	// ErrMissingCacheDir is returned when no cache directory is configured.
	ErrMissingCacheDir = errors.New("missing cache directory")
)
