package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wordplan/internal/planner"
	"github.com/example/wordplan/internal/schedule"
)

func newScheduleCommand() *cobra.Command {
	var studentID int64
	var dateValue string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show what a student studies on a date",
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

			plan, err := app.planner.PlanDay(cmd.Context(), studentID, date)
			if err != nil {
				return fmt.Errorf("planner.PlanDay > %w", err)
			}

			printDayPlan(plan)
			return nil
		},
	}
	cmd.Flags().Int64Var(&studentID, "student", 0, "Student ID")
	cmd.Flags().StringVar(&dateValue, "date", "", "Date in YYYY-MM-DD format (defaults to today)")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func printDayPlan(plan *planner.DayPlan) {
	fmt.Printf("Study plan for student %d on %s (%s)\n", plan.StudentID, plan.Date, plan.Date.Weekday())

	assignment := plan.Result.Assignment
	if assignment == nil {
		fmt.Printf("No study: %s.\n", skipReasonText(plan.Result.Reason))
		return
	}

	fmt.Printf("Curriculum item %d (%s), study day %d\n", assignment.ItemID, assignment.ItemType, assignment.StudyDay)
	fmt.Printf("Units %d-%d\n", assignment.Words.Start, assignment.Words.End)
	if assignment.Sections != nil {
		if assignment.Sections.First == assignment.Sections.Last {
			fmt.Printf("Section %d", assignment.Sections.First)
		} else {
			fmt.Printf("Sections %d-%d", assignment.Sections.First, assignment.Sections.Last)
		}
		if assignment.Half != schedule.HalfNone {
			fmt.Printf(" (%s half)", assignment.Half)
		}
		fmt.Println()
	}
	if assignment.TestType != "" {
		fmt.Printf("Test: %s\n", assignment.TestType)
	}

	if len(plan.Words) > 0 {
		fmt.Println()
		for i, word := range plan.Words {
			fmt.Printf("%3d. %s - %s\n", assignment.Words.Start+i, word.Term, word.Meaning)
		}
	}
}
