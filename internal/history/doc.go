// Package history persists fetch-run outcomes to a local SQLite database.
//
// Each completed fetch run is stored as one run row plus one outcome row per
// processed record. The history subcommand reads this back so operators can
// see which samples failed in earlier sessions without rerunning them.
package history
