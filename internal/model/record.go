package model

// Record represents one 1KP sample: the taxonomy fields from the metadata
// table joined with the GigaDB assembly directory that holds its sequence
// files.
//
// The Prefix field is derived, not part of the metadata table. It is the name
// of the directory-listing entry whose name starts with the sample ID, and it
// is required: a Record without a Prefix cannot be constructed (see
// dataset.Store.AddRecord).
type Record struct {
	// ID is the unique 1KP sample identifier (e.g. "URDJ").
	ID string `json:"id"`

	// Clade is the taxonomic clade of the sampled species.
	Clade string `json:"clade"`

	// Order is the taxonomic order.
	Order string `json:"order"`

	// Family is the taxonomic family.
	Family string `json:"family"`

	// Species is the binomial species name.
	Species string `json:"species"`

	// TissueType describes the sampled tissue, free text.
	TissueType string `json:"tissue_type"`

	// Prefix is the assembly directory name on GigaDB, with the trailing
	// slash stripped. It always starts with ID.
	Prefix string `json:"prefix"`
}

// Field returns the value of the record field selected by key.
//
// Design decision: Field selection is a switch over the closed FieldKey set
// rather than reflection. The field set is fixed by the upstream table format,
// and a switch keeps unknown keys a compile-visible concern.
func (r Record) Field(key FieldKey) string {
	switch key {
	case FieldID:
		return r.ID
	case FieldClade:
		return r.Clade
	case FieldOrder:
		return r.Order
	case FieldFamily:
		return r.Family
	case FieldSpecies:
		return r.Species
	case FieldTissueType:
		return r.TissueType
	default:
		return ""
	}
}

// SequenceFileName returns the local file name for one of this record's
// sequence files: "{prefix}-{suffix}".
func (r Record) SequenceFileName(suffix string) string {
	return r.Prefix + "-" + suffix
}

// SequenceURL returns the remote URL of one of this record's sequence files.
// The archive lays files out as "{base}/{prefix}/{id}-translated-{suffix}".
// The base URL must not end with a slash.
func (r Record) SequenceURL(baseURL, suffix string) string {
	return baseURL + "/" + r.Prefix + "/" + r.ID + "-translated-" + suffix
}
