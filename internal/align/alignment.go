// Package align reads and writes multiple sequence alignments in FASTA,
// NEXUS and PHYLIP formats.
package align

import (
	"fmt"
	"strings"
)

// Record is a single row of an alignment
type Record struct {
	// ID of the sequence as it appeared in the source file
	ID string

	// Seq is the aligned sequence (gaps included)
	Seq string
}

// Alignment is an ordered set of uniquely named, same-length sequences
type Alignment struct {
	records []Record

	// index of each ID in records
	index map[string]int
}

// New returns an empty Alignment
func New() *Alignment {
	return &Alignment{index: make(map[string]int)}
}

// Add appends a record to the alignment. If the ID is already present its
// sequence is replaced and the record keeps its original position.
func (a *Alignment) Add(id, seq string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[id]; ok {
		a.records[i].Seq = seq
		return
	}
	a.index[id] = len(a.records)
	a.records = append(a.records, Record{ID: id, Seq: seq})
}

// set changes the sequence of an existing record
func (a *Alignment) set(id, seq string) {
	a.records[a.index[id]].Seq = seq
}

// Records returns a copy of the alignment's rows in file order
func (a *Alignment) Records() []Record {
	out := make([]Record, len(a.records))
	copy(out, a.records)
	return out
}

// Len is the number of sequences (ntax)
func (a *Alignment) Len() int {
	return len(a.records)
}

// Width is the length of the first sequence (nchar)
func (a *Alignment) Width() int {
	if len(a.records) == 0 {
		return 0
	}
	return len(a.records[0].Seq)
}

// Validate checks that every sequence is as long as the first one
func (a *Alignment) Validate() error {
	if len(a.records) == 0 {
		return ErrEmptyAlignment
	}

	width := a.Width()
	for _, r := range a.records[1:] {
		if len(r.Seq) != width {
			return fmt.Errorf("%w: %q has length %d, but other sequences have length %d", ErrUnaligned, r.ID, len(r.Seq), width)
		}
	}
	return nil
}

// shortID is the first whitespace-delimited token of an ID. Descriptions
// after the ID in FASTA headers are dropped on write.
func shortID(id string) string {
	if fields := strings.Fields(id); len(fields) > 0 {
		return fields[0]
	}
	return id
}
