package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wordplan/internal/review"
)

func TestReviewQuizCLI_Run(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	questions := []review.Question{
		{
			Term:    "apple",
			Answer:  "a round fruit",
			Choices: []string{"a round fruit", "a small bird", "a long river", "a tall tree"},
		},
		{
			Term:    "banana",
			Answer:  "a yellow fruit",
			Choices: []string{"a small bird", "a yellow fruit", "a long river", "a tall tree"},
		},
	}

	testCases := []struct {
		name               string
		input              string
		wantSummary        QuizSummary
		wantOutputContains []string
	}{
		{
			name:  "all answers correct",
			input: "1\n2\n",
			wantSummary: QuizSummary{
				Total:   2,
				Correct: 2,
			},
			wantOutputContains: []string{
				"1. What is the meaning of apple?",
				"  1) a round fruit",
				`Correct. apple means "a round fruit"`,
				`Correct. banana means "a yellow fruit"`,
				"You answered 2 out of 2 questions correctly (100 points).",
			},
		},
		{
			name:  "one answer wrong",
			input: "2\n2\n",
			wantSummary: QuizSummary{
				Total:        2,
				Correct:      1,
				WrongAnswers: []string{"apple"},
			},
			wantOutputContains: []string{
				`Wrong. apple means "a round fruit"`,
				"You answered 1 out of 2 questions correctly (50 points).",
			},
		},
		{
			name:  "invalid input is re-prompted",
			input: "abc\n9\n1\n2\n",
			wantSummary: QuizSummary{
				Total:   2,
				Correct: 2,
			},
			wantOutputContains: []string{
				"Please answer with a number between 1 and 4.",
				"You answered 2 out of 2 questions correctly (100 points).",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cli := NewReviewQuizCLI(strings.NewReader(tc.input), &out)

			summary, err := cli.Run(questions)
			require.NoError(t, err)
			assert.Equal(t, &tc.wantSummary, summary)
			for _, want := range tc.wantOutputContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestReviewQuizCLI_Run_InputEnds(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	questions := []review.Question{
		{Term: "apple", Answer: "a round fruit", Choices: []string{"a round fruit", "a small bird"}},
	}

	var out bytes.Buffer
	cli := NewReviewQuizCLI(strings.NewReader(""), &out)

	_, err := cli.Run(questions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading input")
}

func TestQuizSummary_Score(t *testing.T) {
	testCases := []struct {
		name    string
		summary QuizSummary
		want    int
	}{
		{
			name:    "all correct",
			summary: QuizSummary{Total: 10, Correct: 10},
			want:    100,
		},
		{
			name:    "rounds down",
			summary: QuizSummary{Total: 3, Correct: 2},
			want:    66,
		},
		{
			name:    "no questions",
			summary: QuizSummary{},
			want:    0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.summary.Score())
		})
	}
}
