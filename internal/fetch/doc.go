// Package fetch downloads the selected sequence files for a set of records.
//
// Records are processed strictly sequentially: the one global rate limit in
// the client makes parallelism pointless, and a single loop keeps the
// per-record state machine trivial. A record fails as a whole when any of its
// selected files fails, but one failed record never aborts the run; the
// orchestrator always finishes the batch and reports every outcome.
package fetch
