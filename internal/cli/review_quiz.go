// Package cli renders planner results on a terminal: the interactive
// review quiz and the study statistics report.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/wordplan/internal/review"
)

// ReviewQuizCLI runs a multiple-choice review quiz on a terminal. The
// reader and writer are injected so sessions can be scripted in tests.
type ReviewQuizCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

// NewReviewQuizCLI creates a review quiz session over the given streams.
func NewReviewQuizCLI(in io.Reader, out io.Writer) *ReviewQuizCLI {
	return &ReviewQuizCLI{
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// QuizSummary is the outcome of one completed quiz session.
type QuizSummary struct {
	Total        int
	Correct      int
	WrongAnswers []string
}

// Score returns the session score on a 100-point scale, rounded down.
func (s QuizSummary) Score() int {
	if s.Total == 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}

// Run asks every question in order and returns the session summary. The
// answer is chosen by its number; anything else re-prompts.
func (cli *ReviewQuizCLI) Run(questions []review.Question) (*QuizSummary, error) {
	summary := &QuizSummary{Total: len(questions)}

	for i, question := range questions {
		fmt.Fprintf(cli.stdoutWriter, "%d. What is the meaning of %s?\n",
			i+1, cli.bold.Sprintf("%s", question.Term))
		for j, choice := range question.Choices {
			fmt.Fprintf(cli.stdoutWriter, "  %d) %s\n", j+1, choice)
		}

		chosen, err := cli.readChoice(len(question.Choices))
		if err != nil {
			return nil, err
		}

		answer := question.Choices[chosen-1]
		if answer == question.Answer {
			summary.Correct++
			fmt.Fprint(cli.stdoutWriter, "✅ ")
			_, _ = cli.green.Fprintf(cli.stdoutWriter, `Correct. %s means "%s"`,
				cli.bold.Sprintf("%s", question.Term),
				cli.italic.Sprintf("%s", question.Answer),
			)
		} else {
			summary.WrongAnswers = append(summary.WrongAnswers, question.Term)
			fmt.Fprint(cli.stdoutWriter, "❌ ")
			_, _ = cli.red.Fprintf(cli.stdoutWriter, `Wrong. %s means "%s"`,
				cli.bold.Sprintf("%s", question.Term),
				cli.italic.Sprintf("%s", question.Answer),
			)
		}
		fmt.Fprintln(cli.stdoutWriter)
		fmt.Fprintln(cli.stdoutWriter)
	}

	fmt.Fprintf(cli.stdoutWriter, "You answered %d out of %d questions correctly (%d points).\n",
		summary.Correct, summary.Total, summary.Score())
	return summary, nil
}

func (cli *ReviewQuizCLI) readChoice(choiceCount int) (int, error) {
	for {
		fmt.Fprint(cli.stdoutWriter, "> ")
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("error reading input: %w", err)
		}

		chosen, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || chosen < 1 || chosen > choiceCount {
			fmt.Fprintf(cli.stdoutWriter, "Please answer with a number between 1 and %d.\n", choiceCount)
			continue
		}
		return chosen, nil
	}
}
