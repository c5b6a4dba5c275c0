// Package client provides the rate-limited, retrying HTTP client used for
// all network access to the GigaDB archive.
//
// The archive is a shared public FTP mirror, so the client enforces a minimum
// interval between requests and retries transient failures a bounded number
// of times. There is exactly one Client per process. Its last-fetch timestamp
// is unsynchronized shared state, which is safe because the whole pipeline is
// strictly sequential.
package client
