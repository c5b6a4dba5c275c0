// Package cache persists fetched text bodies on disk, keyed by URL.
//
// The two bootstrap documents (the sample metadata table and the assemblies
// directory listing) rarely change, so re-fetching them on every invocation
// would waste the mirror's bandwidth and the operator's time under the rate
// limit. A cached body is served as long as its file is younger than the
// staleness threshold; past that it is re-fetched and overwritten in place.
//
// The staleness check and the refetch are not atomic. That is acceptable
// because the pipeline is single-threaded; if parallel fetching is ever
// introduced, this package needs per-key locking.
package cache
