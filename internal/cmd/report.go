package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"peacey/internal/analytics"
	"peacey/internal/storage"
)

var (
	reportDate string
	reportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise one day of the interaction log",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now().UTC()
		if reportDate != "" {
			d, err := time.Parse("2006-01-02", reportDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", reportDate, err)
			}
			day = d
		}

		rec, err := storage.Open(cfg.StorageDriver, cfg.StoragePath())
		if err != nil {
			return err
		}
		defer rec.Close()
		events, err := rec.LoadInteractions()
		if err != nil {
			return err
		}

		stats := analytics.AnalyzeDailyLogs(events, day)
		out := cmd.OutOrStdout()
		if reportJSON {
			js, err := stats.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, js)
			return nil
		}
		fmt.Fprint(out, stats.GenerateReportSummary())
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "day to report on (YYYY-MM-DD, UTC); defaults to today")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the stats as JSON")
}
