package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wordplan/internal/cli"
	"github.com/example/wordplan/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var studentID int64
	var year, month int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly/yearly test statistics for a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			logs, err := app.studyLogs.FindByStudent(cmd.Context(), studentID)
			if err != nil {
				return fmt.Errorf("studyLogs.FindByStudent > %w", err)
			}

			result := statistics.Calculate(logs, app.cfg.Schedule.PassingScore, year, month)
			cli.RenderStatsReport(os.Stdout, result)
			return nil
		},
	}
	cmd.Flags().Int64Var(&studentID, "student", 0, "Student ID")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
