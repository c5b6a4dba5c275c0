package model

import "fmt"

// FieldKey selects one of the six record fields for filtering and listing.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. ParseFieldKey converts the CLI spelling and
// String provides the reverse mapping.
type FieldKey int

const (
	// FieldID selects the sample identifier.
	FieldID FieldKey = iota

	// FieldClade selects the taxonomic clade.
	FieldClade

	// FieldOrder selects the taxonomic order.
	FieldOrder

	// FieldFamily selects the taxonomic family.
	FieldFamily

	// FieldSpecies selects the species name.
	FieldSpecies

	// FieldTissueType selects the sampled tissue description.
	FieldTissueType
)

// FieldKeys lists all field keys in table-column order.
// Used for help text and for iterating the full field set.
var FieldKeys = []FieldKey{
	FieldID,
	FieldClade,
	FieldOrder,
	FieldFamily,
	FieldSpecies,
	FieldTissueType,
}

// String returns the CLI spelling of the field key.
func (k FieldKey) String() string {
	switch k {
	case FieldID:
		return "id"
	case FieldClade:
		return "clade"
	case FieldOrder:
		return "order"
	case FieldFamily:
		return "family"
	case FieldSpecies:
		return "species"
	case FieldTissueType:
		return "tissue-type"
	default:
		return "unknown"
	}
}

// ParseFieldKey converts a CLI flag value into a FieldKey.
// It returns an error naming the valid spellings for anything else.
func ParseFieldKey(s string) (FieldKey, error) {
	switch s {
	case "id":
		return FieldID, nil
	case "clade":
		return FieldClade, nil
	case "order":
		return FieldOrder, nil
	case "family":
		return FieldFamily, nil
	case "species":
		return FieldSpecies, nil
	case "tissue-type":
		return FieldTissueType, nil
	default:
		return 0, fmt.Errorf("unknown field key %q (valid: id, clade, order, family, species, tissue-type)", s)
	}
}
