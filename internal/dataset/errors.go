package dataset

import "fmt"

// PrefixNotFoundError is returned by AddRecord when no directory-listing
// entry starts with the record's sample ID. It signals a mismatch between the
// metadata table and the listing, which makes the row unusable: without a
// prefix there is no directory to download from.
type PrefixNotFoundError struct {
	// ID is the sample identifier that matched no listing entry.
	ID string
}

// Error implements the error interface.
func (e *PrefixNotFoundError) Error() string {
	return fmt.Sprintf("no directory entry found for sample %s", e.ID)
}
