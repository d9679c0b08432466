package align

import (
	"fmt"
	"io"
	"strings"
)

// ReadFASTA reads a FASTA alignment. Each header starts a new record whose ID
// is everything after the ">". The line following a header is its sequence;
// sequences aren't joined across lines, a later line replaces an earlier one.
func ReadFASTA(r io.Reader) (*Alignment, error) {
	a := New()
	header := ""
	seen := false

	err := scanLines(r, func(n int, line string) error {
		if strings.HasPrefix(line, ">") {
			header = line[1:]
			seen = true
			a.Add(header, "")
			return nil
		}
		if !seen {
			return fmt.Errorf("%w: line %d: sequence before the first FASTA header", ErrMalformedRow, n)
		}
		a.set(header, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// WriteFASTA writes every record as a ">id" line followed by its sequence.
// Only the first word of each ID is kept.
func WriteFASTA(w io.Writer, a *Alignment, _ WriteOptions) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	for _, r := range a.records {
		pf(">%s\n%s\n", shortID(r.ID), r.Seq)
	}
	return wrapIO(err)
}

// wrapIO marks a write error as ErrIO
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
