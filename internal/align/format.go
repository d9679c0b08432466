package align

import (
	"fmt"
	"io"
	"strings"
)

// Format is one of the supported alignment file formats
type Format int

const (
	// FASTA is a ">id" header line followed by a single sequence line
	FASTA Format = iota + 1

	// NEXUS is a "#NEXUS" file with a DATA block and MATRIX
	NEXUS

	// PHYLIP is an "ntax nchar" header followed by "id sequence" rows
	PHYLIP
)

// Reader parses an alignment from r
type Reader func(r io.Reader) (*Alignment, error)

// Writer serializes an alignment to w
type Writer func(w io.Writer, a *Alignment, opts WriteOptions) error

// codec is the reader/writer pair and file naming for a Format
type codec struct {
	name    string
	ext     string
	aliases []string
	read    Reader
	write   Writer
}

// formats is the single dispatch table from Format to its codec
var formats = map[Format]codec{
	FASTA: {
		name:    "FASTA",
		ext:     ".fasta",
		aliases: []string{"FA"},
		read:    ReadFASTA,
		write:   WriteFASTA,
	},
	NEXUS: {
		name:    "NEXUS",
		ext:     ".nex",
		aliases: []string{"NEX"},
		read:    ReadNEXUS,
		write:   WriteNEXUS,
	},
	PHYLIP: {
		name:    "PHYLIP",
		ext:     ".phy",
		aliases: []string{"PHY"},
		read:    ReadPHYLIP,
		write:   WritePHYLIP,
	},
}

// Formats lists the supported formats in a stable order
func Formats() []Format {
	return []Format{FASTA, NEXUS, PHYLIP}
}

// ParseFormat turns a user supplied format name (case-insensitive, with the
// short aliases FA, NEX and PHY) into a Format
func ParseFormat(name string) (Format, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, f := range Formats() {
		c := formats[f]
		if upper == c.name {
			return f, nil
		}
		for _, alias := range c.aliases {
			if upper == alias {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q, try FASTA, NEXUS or PHYLIP", ErrUnrecognizedFormat, name)
}

func (f Format) String() string {
	if c, ok := formats[f]; ok {
		return c.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Valid is false for the zero Format and anything outside the supported set
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

// Ext is the file extension written for the format, including the dot
func (f Format) Ext() string {
	return formats[f].ext
}

// Read parses an alignment in format f
func (f Format) Read(r io.Reader) (*Alignment, error) {
	c, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedFormat, f)
	}
	return c.read(r)
}

// Write serializes an alignment in format f
func (f Format) Write(w io.Writer, a *Alignment, opts WriteOptions) error {
	c, ok := formats[f]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnrecognizedFormat, f)
	}
	return c.write(w, a, opts)
}
