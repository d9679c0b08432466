package align

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errStop ends a scan early without reporting an error
var errStop = errors.New("stop")

// scanLines calls fn with every trimmed, non-blank line of r and its 1-based
// line number. Lines aren't length limited, alignments are often one long
// line per sequence.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}

		if line := strings.TrimSpace(raw); line != "" {
			if fnErr := fn(n, line); fnErr == errStop {
				return nil
			} else if fnErr != nil {
				return fnErr
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

// splitRow splits a data row into its ID and sequence at the first run of
// whitespace. Whitespace inside the sequence is kept.
func splitRow(n int, line string) (id, seq string, err error) {
	i := strings.IndexAny(line, " \t\v\f\r")
	if i < 0 {
		return "", "", fmt.Errorf("%w: line %d: %q has no sequence", ErrMalformedRow, n, line)
	}
	return line[:i], strings.TrimLeft(line[i:], " \t\v\f\r"), nil
}
