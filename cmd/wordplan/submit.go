package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/wordplan/internal/planner"
)

func newSubmitCommand() *cobra.Command {
	var studentID int64
	var dateValue string
	var score int
	var wrongAnswers []string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Record a test result for a date's assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if score < 0 || score > 100 {
				return fmt.Errorf("--score must be between 0 and 100")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			date, err := resolveDate(dateValue, app.location)
			if err != nil {
				return err
			}

			outcome, err := app.planner.SubmitResult(cmd.Context(), planner.SubmitParams{
				StudentID:    studentID,
				Date:         date,
				Score:        score,
				WrongAnswers: wrongAnswers,
			})
			if err != nil {
				return fmt.Errorf("planner.SubmitResult > %w", err)
			}

			if outcome.Passed {
				color.Green("Passed the %s test with %d points. Earned %d reward dollars.",
					date, score, outcome.Rewarded)
			} else {
				color.Red("Failed the %s test with %d points (passing score is %d).",
					date, score, app.cfg.Schedule.PassingScore)
			}
			if outcome.ItemCompleted {
				fmt.Println("The curriculum item is completed. The schedule moves to the next item.")
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&studentID, "student", 0, "Student ID")
	cmd.Flags().StringVar(&dateValue, "date", "", "Date in YYYY-MM-DD format (defaults to today)")
	cmd.Flags().IntVar(&score, "score", 0, "Test score between 0 and 100")
	cmd.Flags().StringSliceVar(&wrongAnswers, "wrong", nil, "Terms answered incorrectly")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
