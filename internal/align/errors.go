package align

import "errors"

var (
	// ErrIO is returned when an alignment file can't be opened, read or written
	ErrIO = errors.New("i/o failure")

	// ErrUnrecognizedFormat is returned for an unknown format name or an input
	// file whose first line doesn't look like FASTA, NEXUS or PHYLIP
	ErrUnrecognizedFormat = errors.New("unrecognized format")

	// ErrMalformedRow is returned when a data line can't be split into an ID and a sequence
	ErrMalformedRow = errors.New("malformed row")

	// ErrUnaligned is returned when the sequences of an alignment differ in length
	ErrUnaligned = errors.New("sequences must be aligned")

	// ErrEmptyAlignment is returned when no records were parsed from the input
	ErrEmptyAlignment = errors.New("no sequences found")
)
