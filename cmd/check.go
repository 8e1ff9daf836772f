package cmd

import (
	"errors"
	"io"

	"config-diff/feature/integrity"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var fixFlag bool

// checkCmd verifies the history database and the report bucket.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the configured history database and report storage",
	Args:  folderCollision,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()

		report := a.integrity().Run(cmd.Context(), fixFlag)
		renderIntegrity(cmd.OutOrStdout(), report)
		if !report.Healthy() {
			return errors.New("integrity checks failed")
		}
		return nil
	},
}

func renderIntegrity(w io.Writer, report integrity.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Check", "Status", "Detail"})
	t.AppendRow(table.Row{"storage", report.Storage.Status, report.Storage.Error})
	t.AppendRow(table.Row{"schema", report.Schema.Status, report.Schema.Error})
	t.Render()
}

func init() {
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the report bucket when it is missing")
	RootCmd.AddCommand(checkCmd)
}
