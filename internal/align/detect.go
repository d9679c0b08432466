package align

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Detect guesses the format of an alignment from its first non-blank line
func Detect(r io.Reader) (Format, error) {
	var first string
	err := scanLines(r, func(_ int, line string) error {
		first = line
		return errStop
	})
	if err != nil {
		return 0, err
	}

	switch {
	case strings.HasPrefix(first, ">"):
		return FASTA, nil
	case strings.EqualFold(first, "#NEXUS"):
		return NEXUS, nil
	case isPhylipHeader(first):
		return PHYLIP, nil
	}

	if first == "" {
		return 0, fmt.Errorf("%w: input is empty", ErrUnrecognizedFormat)
	}
	return 0, fmt.Errorf("%w: first line %q is not FASTA, NEXUS or PHYLIP", ErrUnrecognizedFormat, first)
}

// DetectFile opens the file at path and detects its format
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return Detect(f)
}

// isPhylipHeader is true for lines like "4 10": digits, optionally separated by whitespace
func isPhylipHeader(line string) bool {
	digits := 0
	for _, c := range line {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case unicode.IsSpace(c):
		default:
			return false
		}
	}
	return digits > 0
}
