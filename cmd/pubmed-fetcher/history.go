package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/archive"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived runs and re-read their reports",
	Long: `History lists runs recorded with --archive. With --run it prints one
run's report rows without re-querying the API.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int64("run", 0, "show the rows of one archived run")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := archive.Open(viper.GetString("archive.path"))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if runID, _ := cmd.Flags().GetInt64("run"); runID > 0 {
		rows, err := store.RunRows(ctx, runID)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.FormatJSON(rows, out)
		}
		report.FormatTable(rows, out)
		return nil
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No archived runs.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-20s  %-6s  %s\n", "Run", "Started", "Rows", "Query")
	for _, r := range runs {
		fmt.Fprintf(out, "%-5d  %-20s  %-6d  %s\n",
			r.ID, r.Started.Format("2006-01-02 15:04:05"), r.RowCount, r.Query)
	}
	return nil
}
