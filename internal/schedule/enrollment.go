package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ItemType identifies the kind of content behind a curriculum item.
type ItemType string

const (
	ItemTypeWordbook  ItemType = "wordbook"
	ItemTypeListening ItemType = "listening"
)

// AmountType identifies how a curriculum item paces its content.
type AmountType string

const (
	// AmountTypeSection assigns whole, half or double sections per study day.
	AmountTypeSection AmountType = "section"
	// AmountTypeCount assigns a fixed number of words per study day.
	AmountTypeCount AmountType = "count"
)

// weekdayTokens maps the stored weekday tokens to time.Weekday values.
var weekdayTokens = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// StudyDays is the set of weekdays on which content is due.
type StudyDays map[time.Weekday]bool

// ParseStudyDays parses weekday tokens ("mon", "tue", ...) into a StudyDays
// set. It fails on unknown tokens and on an empty result so that a malformed
// enrollment never silently produces an empty schedule.
func ParseStudyDays(tokens []string) (StudyDays, error) {
	days := make(StudyDays, len(tokens))
	for _, token := range tokens {
		weekday, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(token))]
		if !ok {
			return nil, fmt.Errorf("unknown study day token %q: expected one of sun, mon, tue, wed, thu, fri, sat", token)
		}
		days[weekday] = true
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("study days are empty: at least one weekday is required")
	}
	return days, nil
}

// Contains reports whether the weekday of d is a study day.
func (s StudyDays) Contains(d Date) bool {
	return s[d.Weekday()]
}

// Tokens returns the set as sorted weekday tokens, Sunday first.
func (s StudyDays) Tokens() []string {
	order := []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	var tokens []string
	for _, token := range order {
		if s[weekdayTokens[token]] {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Break is a closed interval of calendar days during which no study day
// counts and nothing is assignable.
type Break struct {
	Start Date `json:"start_date" yaml:"start_date"`
	End   Date `json:"end_date" yaml:"end_date"`
}

// Contains reports whether d falls inside the break, bounds included.
func (b Break) Contains(d Date) bool {
	return !d.Before(b.Start) && !d.After(b.End)
}

// Overrides are per-student pacing overrides applied to every item of the
// enrolled curriculum. Zero values leave the item's own configuration intact.
type Overrides struct {
	AmountType     AmountType `json:"daily_amount_type,omitempty" yaml:"daily_amount_type,omitempty"`
	SectionAmount  float64    `json:"daily_section_amount,omitempty" yaml:"daily_section_amount,omitempty"`
	DailyWordCount int        `json:"daily_word_count,omitempty" yaml:"daily_word_count,omitempty"`
	TestType       string     `json:"test_type,omitempty" yaml:"test_type,omitempty"`
}

// Item is the resolver's view of one curriculum item: its pacing rule plus
// the size of the content behind it. SectionWords holds the word count of
// each section in order; TotalWords is the flattened word count.
type Item struct {
	ID             int64
	Type           ItemType
	AmountType     AmountType
	SectionAmount  float64
	SectionStart   int
	DailyWordCount int
	TotalWords     int
	SectionWords   []int
}

// Enrollment is a student's curriculum enrollment record. CurrentItemID and
// CurrentProgress are informational cursors advanced on test completion;
// schedule resolution never reads or writes them.
type Enrollment struct {
	StudentID    int64
	CurriculumID int64
	StartDate    Date
	StudyDays    StudyDays
	Breaks       []Break
	Overrides    *Overrides

	CurrentItemID   int64
	CurrentProgress int
}

// OnBreak reports whether d falls inside any of the enrollment's breaks.
func (e Enrollment) OnBreak(d Date) bool {
	for _, b := range e.Breaks {
		if b.Contains(d) {
			return true
		}
	}
	return false
}
