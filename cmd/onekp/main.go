// Package main provides the entry point for the onekp CLI.
//
// onekp downloads transcriptome assemblies of the 1KP (One Thousand Plant
// Transcriptomes) dataset from its GigaDB mirror. It resolves sample
// identifiers against the published metadata table and assemblies listing,
// then fetches the selected FASTA archives politely, one request at a time.
//
// Usage:
//
//	onekp fetch --filter-key clade --filter-values Chloranthales
//	onekp metadata
//	onekp show species
//
// See --help for all available options.
package main

// main is the entry point for onekp.
func main() {
	Execute()
}
