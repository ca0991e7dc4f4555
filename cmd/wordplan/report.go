package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wordplan/internal/report"
	"github.com/example/wordplan/internal/schedule"
)

func newReportCommand() *cobra.Command {
	var studentID int64
	var weekStartValue string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a weekly study plan report as Markdown and PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			var weekStart schedule.Date
			if weekStartValue == "" {
				weekStart = mondayOf(schedule.Today(app.location))
			} else {
				weekStart, err = schedule.ParseDate(weekStartValue)
				if err != nil {
					return err
				}
			}

			generator := report.NewGenerator(
				app.planner,
				app.accounts,
				app.cfg.Reports.OutputDirectory,
				app.cfg.Reports.Template,
			)
			markdownPath, pdfPath, err := generator.WeekPlanReport(cmd.Context(), studentID, weekStart)
			if err != nil {
				return fmt.Errorf("generator.WeekPlanReport > %w", err)
			}

			fmt.Printf("Markdown report: %s\n", markdownPath)
			fmt.Printf("PDF report: %s\n", pdfPath)
			return nil
		},
	}
	cmd.Flags().Int64Var(&studentID, "student", 0, "Student ID")
	cmd.Flags().StringVar(&weekStartValue, "week-start", "", "First day of the week in YYYY-MM-DD format (defaults to this week's Monday)")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

// mondayOf returns the Monday of the week containing date.
func mondayOf(date schedule.Date) schedule.Date {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDays(-offset)
}
