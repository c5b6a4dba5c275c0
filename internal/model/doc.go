// Package model defines the core data structures used throughout onekp.
//
// This package contains the following main types:
//   - Record: One 1KP sample joined with its GigaDB assembly directory
//   - FieldKey: A closed enumeration of the record's filterable fields
//   - SequenceType: The choice of sequence files to download per record
//   - RunSummary: The per-record outcomes of one fetch run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (dataset, fetch, report, history) need to use
// these types, so centralizing them prevents import cycles.
package model
