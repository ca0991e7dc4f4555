package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wordplan/internal/cli"
)

func newReviewCommand() *cobra.Command {
	var studentID int64
	var dateValue string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Run the review quiz preceding a date's assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			questions, err := app.planner.ReviewQuiz(cmd.Context(), studentID, date)
			if err != nil {
				return fmt.Errorf("planner.ReviewQuiz > %w", err)
			}
			if len(questions) == 0 {
				fmt.Printf("No review quiz for %s.\n", date)
				return nil
			}

			quiz := cli.NewReviewQuizCLI(os.Stdin, os.Stdout)
			summary, err := quiz.Run(questions)
			if err != nil {
				return err
			}

			fmt.Printf("Record the result with: wordplan submit --student %d --date %s --score %d\n",
				studentID, date, summary.Score())
			return nil
		},
	}
	cmd.Flags().Int64Var(&studentID, "student", 0, "Student ID")
	cmd.Flags().StringVar(&dateValue, "date", "", "Date in YYYY-MM-DD format (defaults to today)")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
