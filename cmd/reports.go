package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"config-diff/feature/publish"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var errStorageDisabled = errors.New("report storage is not configured, set STORAGE_ENABLED=true")

var fetchOutput string

// reportsCmd groups the published report commands.
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse reports published to object storage",
	Args:  folderCollision,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published reports, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()
		if a.publish == nil {
			return errStorageDisabled
		}

		reports, err := a.publish.List(cmd.Context())
		if err != nil {
			return err
		}
		renderReports(cmd.OutOrStdout(), reports)
		return nil
	},
}

var reportsFetchCmd = &cobra.Command{
	Use:   "fetch <object>",
	Short: "Download a published report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()
		if a.publish == nil {
			return errStorageDisabled
		}

		if fetchOutput == "" || fetchOutput == "-" {
			return a.publish.Fetch(cmd.Context(), args[0], cmd.OutOrStdout())
		}

		f, err := os.Create(fetchOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fetchOutput, err)
		}
		if err := a.publish.Fetch(cmd.Context(), args[0], f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func renderReports(w io.Writer, reports []publish.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Run", "Object", "Size", "Modified"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	for _, r := range reports {
		t.AppendRow(table.Row{r.RunID, r.Object, r.Size, r.LastModified.Format("2006-01-02 15:04:05")})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d report(s)", len(reports))})
	t.Render()
}

func init() {
	reportsFetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Write the report to this file instead of stdout")
	reportsCmd.AddCommand(reportsListCmd, reportsFetchCmd)
	RootCmd.AddCommand(reportsCmd)
}
