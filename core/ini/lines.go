package ini

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineSize bounds a single line. Longer lines are skipped.
const MaxLineSize = 1024 * 1024

// NewLineScanner returns a line scanner that drops lines longer than
// MaxLineSize instead of failing, so one oversized line does not hide the
// rest of the input. Trailing carriage returns are removed.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	scanner.Split(skipLongLines(MaxLineSize))
	return scanner
}

func skipLongLines(limit int) bufio.SplitFunc {
	discarding := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		i := bytes.IndexByte(data, '\n')

		if discarding {
			if i < 0 {
				return len(data), nil, nil
			}
			discarding = false
			return i + 1, nil, nil
		}

		switch {
		case i >= 0:
			return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
		case len(data) >= limit:
			discarding = true
			return len(data), nil, nil
		case atEOF && len(data) > 0:
			return len(data), bytes.TrimSuffix(data, []byte{'\r'}), nil
		}
		return 0, nil, nil
	}
}
