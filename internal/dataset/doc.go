// Package dataset joins the two remote documents describing the 1KP dataset
// into queryable records.
//
// The sample metadata table (TSV) carries the taxonomy fields but not the
// archive directory names; the assemblies directory listing (HTML) carries
// the directory names but no taxonomy. The Store cross-references them: each
// metadata row is matched to the first listing entry whose name starts with
// the row's sample ID, and that entry becomes the record's prefix. A row
// without a matching entry cannot become a record.
package dataset
