package report

import (
	"io"
	"strconv"

	"config-diff/core/diff"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FileSummary holds the counts for one compared file name.
type FileSummary struct {
	File    string
	Summary diff.Summary
}

// RenderSummary writes a table with one line per file and a total footer.
func RenderSummary(w io.Writer, files []FileSummary) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Keys", "Differing", "Undocumented", "Missing Sources"})

	var total diff.Summary
	for _, f := range files {
		total.Add(f.Summary)
		tw.AppendRow(table.Row{
			f.File,
			strconv.Itoa(f.Summary.Keys),
			strconv.Itoa(f.Summary.Differing),
			strconv.Itoa(f.Summary.Undocumented),
			strconv.Itoa(f.Summary.MissingSources),
		})
	}
	tw.AppendFooter(table.Row{
		"Total",
		strconv.Itoa(total.Keys),
		strconv.Itoa(total.Differing),
		strconv.Itoa(total.Undocumented),
		strconv.Itoa(total.MissingSources),
	})

	configs := make([]table.ColumnConfig, 0, 4)
	for i := 2; i <= 5; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i,
			Align:       text.AlignRight,
			AlignFooter: text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}
