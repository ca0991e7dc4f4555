// Package review computes spaced-review ranges over already-taught content
// and builds multiple-choice questions for them.
package review

import (
	"fmt"
	"math/rand"

	"github.com/example/wordplan/internal/schedule"
)

const choicesPerQuestion = 4

// Range returns the word-index window to resurface as review material: the
// two days of content immediately preceding the current day's window.
// currentEnd is the last word index already taught. The second return value
// is false when there is nothing to review yet (first day of study).
func Range(currentEnd, dailyAmount int) (schedule.Window, bool) {
	end := currentEnd - dailyAmount
	if end < 1 {
		return schedule.Window{}, false
	}
	start := end - 2*dailyAmount + 1
	if start < 1 {
		start = 1
	}
	return schedule.Window{Start: start, End: end}, true
}

// Entry is one reviewable unit: the term shown to the student and the
// meaning they must pick.
type Entry struct {
	Term    string
	Meaning string
}

// Question is a single multiple-choice review question. Choices contains
// the correct meaning and three distractors in shuffled order.
type Question struct {
	Term    string
	Answer  string
	Choices []string
}

// QuizBuilder turns review windows into multiple-choice questions. The
// random source is injected so tests stay deterministic.
type QuizBuilder struct {
	rng *rand.Rand
}

// NewQuizBuilder creates a QuizBuilder over the given random source.
func NewQuizBuilder(rng *rand.Rand) *QuizBuilder {
	return &QuizBuilder{rng: rng}
}

// Build creates one question per entry inside window. window indexes are
// 1-based into pool. Distractors are drawn uniformly from the full pool by
// rejection sampling, excluding the question's own meaning, until three
// distinct meanings are found.
func (b *QuizBuilder) Build(pool []Entry, window schedule.Window) ([]Question, error) {
	if window.Start < 1 || window.End > len(pool) {
		return nil, fmt.Errorf("review window [%d, %d] is out of range for %d words", window.Start, window.End, len(pool))
	}

	if distinctMeanings(pool) < choicesPerQuestion {
		return nil, fmt.Errorf("word pool has fewer than %d distinct meanings, cannot build distractors", choicesPerQuestion)
	}

	questions := make([]Question, 0, window.Len())
	for i := window.Start; i <= window.End; i++ {
		entry := pool[i-1]
		choices := b.distractors(pool, entry.Meaning)
		choices = append(choices, entry.Meaning)
		b.rng.Shuffle(len(choices), func(x, y int) {
			choices[x], choices[y] = choices[y], choices[x]
		})

		questions = append(questions, Question{
			Term:    entry.Term,
			Answer:  entry.Meaning,
			Choices: choices,
		})
	}
	return questions, nil
}

func (b *QuizBuilder) distractors(pool []Entry, answer string) []string {
	seen := map[string]bool{answer: true}
	var picked []string
	for len(picked) < choicesPerQuestion-1 {
		candidate := pool[b.rng.Intn(len(pool))].Meaning
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		picked = append(picked, candidate)
	}
	return picked
}

func distinctMeanings(pool []Entry) int {
	seen := make(map[string]bool, len(pool))
	for _, entry := range pool {
		seen[entry.Meaning] = true
	}
	return len(seen)
}
