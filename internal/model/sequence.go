package model

import "fmt"

// Sequence file suffixes as they appear in the GigaDB archive.
// Remote files are named "{id}-translated-{suffix}".
const (
	// NucleotideFileName is the suffix of the nucleotide FASTA archive.
	NucleotideFileName = "nucleotides.fa.gz"

	// ProteinFileName is the suffix of the protein FASTA archive.
	ProteinFileName = "protein.fa.gz"
)

// SequenceType is the choice of which sequence files to download per record:
// nucleotide, protein, or both.
type SequenceType int

const (
	// SequenceNucleotide downloads only the nucleotide FASTA file.
	SequenceNucleotide SequenceType = iota

	// SequenceProtein downloads only the protein FASTA file.
	SequenceProtein

	// SequenceBoth downloads both files per record.
	SequenceBoth
)

// String returns the CLI spelling of the sequence type.
func (t SequenceType) String() string {
	switch t {
	case SequenceNucleotide:
		return "nucleotide"
	case SequenceProtein:
		return "protein"
	case SequenceBoth:
		return "both"
	default:
		return "unknown"
	}
}

// FileNames returns the remote file-name suffixes the type resolves to,
// in the order they are fetched.
func (t SequenceType) FileNames() []string {
	switch t {
	case SequenceNucleotide:
		return []string{NucleotideFileName}
	case SequenceProtein:
		return []string{ProteinFileName}
	case SequenceBoth:
		return []string{NucleotideFileName, ProteinFileName}
	default:
		return nil
	}
}

// ParseSequenceType converts a CLI flag value into a SequenceType.
func ParseSequenceType(s string) (SequenceType, error) {
	switch s {
	case "nucleotide":
		return SequenceNucleotide, nil
	case "protein":
		return SequenceProtein, nil
	case "both":
		return SequenceBoth, nil
	default:
		return 0, fmt.Errorf("unknown sequence type %q (valid: nucleotide, protein, both)", s)
	}
}
