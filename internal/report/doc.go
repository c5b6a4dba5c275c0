// Package report renders fetch-run summaries and metadata listings.
//
// Two summary formats are provided: a plain-text terminal format and a
// GitHub-flavored Markdown format, plus TSV and Markdown renderings of the
// record metadata for the metadata subcommand. All writers are pure
// formatters over model types; they never touch the network or the store.
package report
