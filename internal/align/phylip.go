package align

import (
	"fmt"
	"io"
)

// ReadPHYLIP reads a sequential PHYLIP alignment. The "ntax nchar" header is
// skipped without checking it against the rows.
func ReadPHYLIP(r io.Reader) (*Alignment, error) {
	a := New()
	header := true

	err := scanLines(r, func(n int, line string) error {
		if header {
			header = false
			return nil
		}

		id, seq, err := splitRow(n, line)
		if err != nil {
			return err
		}
		a.Add(id, seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// WritePHYLIP writes an "ntax nchar" header and then one "id   sequence" row
// per record. It assumes the alignment was validated.
func WritePHYLIP(w io.Writer, a *Alignment, _ WriteOptions) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	pf("%d %d\n", a.Len(), a.Width())
	for _, r := range a.records {
		pf("%s   %s\n", shortID(r.ID), r.Seq)
	}
	return wrapIO(err)
}
