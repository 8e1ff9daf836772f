package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"config-diff/core/diff"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to the report path to name its lock file.
const LockSuffix = ".lock"

// Writer renders rows using a fixed delimiter configuration.
type Writer struct {
	cfg      Config
	replacer *strings.Replacer
}

// NewWriter creates a Writer. Empty fields of cfg fall back to their defaults.
func NewWriter(cfg Config) *Writer {
	cfg = cfg.withDefaults()
	return &Writer{
		cfg: cfg,
		replacer: strings.NewReplacer(
			cfg.Delimiter, cfg.Substitute,
			cfg.ValueDelimiter, cfg.Substitute,
			"\n", " ",
			"\r", " ",
		),
	}
}

// Header returns the column names for a report over the given number of sources.
func Header(sources int) []string {
	cols := []string{"File", "Group", "Key", "Help", "Diff", "Default"}
	for i := 1; i <= sources; i++ {
		cols = append(cols, "Value"+strconv.Itoa(i))
	}
	return cols
}

// Write emits the header and one line per row to w.
func (wr *Writer) Write(w io.Writer, rows []diff.Row, sources int) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Header(sources), wr.cfg.Delimiter) + "\n"); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := bw.WriteString(wr.Line(row, sources) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Line renders a single row without the trailing newline.
// Rows with fewer value lists than sources are padded with empty columns.
func (wr *Writer) Line(row diff.Row, sources int) string {
	fields := make([]string, 0, 6+sources)
	fields = append(fields,
		wr.clean(row.File),
		wr.clean(row.Group),
		wr.clean(row.Key),
		wr.clean(deref(row.Help)),
		strconv.FormatBool(row.Differs),
		wr.clean(deref(row.Default)),
	)

	for i := 0; i < sources; i++ {
		var values []string
		if i < len(row.Values) {
			values = row.Values[i]
		}
		cleaned := make([]string, len(values))
		for j, v := range values {
			cleaned[j] = wr.clean(v)
		}
		fields = append(fields, strings.Join(cleaned, wr.cfg.ValueDelimiter))
	}

	return strings.Join(fields, wr.cfg.Delimiter)
}

// WriteFile writes the report to path while holding its lock file.
func (wr *Writer) WriteFile(path string, rows []diff.Row, sources int) (err error) {
	lock := flock.New(path + LockSuffix)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock report %s: %w", path, err)
	}
	defer lock.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report %s: %w", path, cerr)
		}
	}()

	if err := wr.Write(f, rows, sources); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func (wr *Writer) clean(s string) string {
	return wr.replacer.Replace(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
