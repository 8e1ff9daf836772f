package ini

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Parse reads INI text from r.
func Parse(r io.Reader) (*File, error) {
	f := New()
	current := DefaultGroup

	scanner := NewLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if name, ok := header(line); ok {
			current = name
			f.group(current)
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		f.group(current).add(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return f, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) *File {
	// strings.Reader never fails and over-long lines are skipped
	f, err := Parse(strings.NewReader(s))
	if err != nil {
		return New()
	}
	return f
}

// ParseFile parses the file at path.
// A file that does not exist yields an empty File and no error.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer fh.Close()

	return Parse(fh)
}

// header returns the group name when line is a "[name]" section header.
func header(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}
