package schedule

import (
	"fmt"
	"log/slog"
)

// DefaultFallbackWordCount is the per-day word count applied when an item
// carries no daily-amount configuration at all.
const DefaultFallbackWordCount = 30

// SkipReason explains why no content is due on a date. These are routine
// business outcomes, not faults; callers are expected to branch on them.
type SkipReason string

const (
	SkipNone             SkipReason = ""
	SkipBeforeEnrollment SkipReason = "before_enrollment"
	SkipNotStudyDay      SkipReason = "not_study_day"
	SkipOnBreak          SkipReason = "on_break"
	SkipCompleted        SkipReason = "completed"
)

// Window is an inclusive 1-based range of word indexes into an item's
// flattened word list.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of words covered by the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// SectionSpan is an inclusive 1-based range of section numbers. It is only
// set for section-paced items.
type SectionSpan struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// HalfSection identifies which half of a section a half-paced day covers.
type HalfSection string

const (
	HalfNone   HalfSection = ""
	HalfFirst  HalfSection = "first"
	HalfSecond HalfSection = "second"
)

// Assignment identifies the curriculum item active on a date and the content
// window due that day.
type Assignment struct {
	ItemID   int64       `json:"item_id"`
	ItemType ItemType    `json:"item_type"`
	StudyDay int         `json:"study_day"` // 1-indexed count since enrollment start
	LocalDay int         `json:"local_day"` // 1-indexed day within the active item
	Words    Window      `json:"words"`
	Sections *SectionSpan `json:"sections,omitempty"`
	Half     HalfSection `json:"half,omitempty"`
	TestType string      `json:"test_type,omitempty"`
}

// Result is the outcome of resolving one date: either an assignment or a
// skip reason, never both.
type Result struct {
	Assignment *Assignment
	Reason     SkipReason
}

// Assigned reports whether content is due.
func (r Result) Assigned() bool {
	return r.Assignment != nil
}

func skip(reason SkipReason) Result {
	return Result{Reason: reason}
}

// Resolver maps (enrollment, date) pairs to assignments. It holds no state
// between calls; resolution is a pure function of its inputs.
type Resolver struct {
	fallbackWords int
	logger        *slog.Logger
}

// NewResolver creates a Resolver. fallbackWords is the per-day word count
// used for items with no daily-amount configuration; zero selects
// DefaultFallbackWordCount.
func NewResolver(fallbackWords int, logger *slog.Logger) *Resolver {
	if fallbackWords <= 0 {
		fallbackWords = DefaultFallbackWordCount
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{fallbackWords: fallbackWords, logger: logger}
}

// Resolve computes the assignment due on target for the given enrollment and
// its ordered curriculum items. It returns an error only for malformed
// input; expected outcomes (weekend, break, finished curriculum) come back
// as skip reasons.
func (r *Resolver) Resolve(enrollment Enrollment, items []Item, target Date) (Result, error) {
	if len(enrollment.StudyDays) == 0 {
		return Result{}, fmt.Errorf("enrollment of student %d: study days are empty", enrollment.StudentID)
	}
	if enrollment.StartDate.IsZero() {
		return Result{}, fmt.Errorf("enrollment of student %d: start date is not set", enrollment.StudentID)
	}

	if target.Before(enrollment.StartDate) {
		return skip(SkipBeforeEnrollment), nil
	}
	if !enrollment.StudyDays.Contains(target) {
		return skip(SkipNotStudyDay), nil
	}
	if enrollment.OnBreak(target) {
		return skip(SkipOnBreak), nil
	}

	// Count study days from start through target, break days excluded.
	// The first study day is day 1.
	studyDay := 0
	for d := enrollment.StartDate; !d.After(target); d = d.AddDays(1) {
		if enrollment.StudyDays.Contains(d) && !enrollment.OnBreak(d) {
			studyDay++
		}
	}

	cumulative := 0
	for i := range items {
		item, err := r.effectiveItem(items[i], enrollment.Overrides)
		if err != nil {
			return Result{}, err
		}

		capacity, err := itemCapacity(item)
		if err != nil {
			return Result{}, err
		}
		if studyDay > cumulative+capacity {
			cumulative += capacity
			continue
		}

		localDay := studyDay - cumulative
		assignment, err := itemWindow(item, localDay)
		if err != nil {
			return Result{}, err
		}
		assignment.StudyDay = studyDay
		if enrollment.Overrides != nil {
			assignment.TestType = enrollment.Overrides.TestType
		}
		return Result{Assignment: assignment}, nil
	}

	return skip(SkipCompleted), nil
}

// effectiveItem applies enrollment-wide overrides and the fallback pacing to
// one item and validates the outcome.
func (r *Resolver) effectiveItem(item Item, overrides *Overrides) (Item, error) {
	if overrides != nil {
		if overrides.AmountType != "" {
			item.AmountType = overrides.AmountType
		}
		if overrides.SectionAmount > 0 {
			item.SectionAmount = overrides.SectionAmount
		}
		if overrides.DailyWordCount > 0 {
			item.DailyWordCount = overrides.DailyWordCount
		}
	}

	if item.AmountType == "" {
		// The legacy data set has items with no pacing configuration at
		// all; they pace by a fixed word count rather than failing.
		r.logger.Warn("curriculum item has no daily amount type, using fallback word count",
			"item_id", item.ID, "fallback_words", r.fallbackWords)
		item.AmountType = AmountTypeCount
		item.DailyWordCount = r.fallbackWords
	}

	switch item.Type {
	case ItemTypeWordbook, ItemTypeListening:
	default:
		return Item{}, fmt.Errorf("curriculum item %d: unknown item type %q", item.ID, item.Type)
	}

	switch item.AmountType {
	case AmountTypeCount:
		if item.DailyWordCount <= 0 {
			return Item{}, fmt.Errorf("curriculum item %d: daily word count must be positive, got %d", item.ID, item.DailyWordCount)
		}
	case AmountTypeSection:
		if item.SectionAmount != 0.5 && item.SectionAmount != 1 && item.SectionAmount != 2 {
			return Item{}, fmt.Errorf("curriculum item %d: daily section amount must be 0.5, 1 or 2, got %v", item.ID, item.SectionAmount)
		}
		if len(item.SectionWords) == 0 {
			return Item{}, fmt.Errorf("curriculum item %d: section-paced item has no sections", item.ID)
		}
		if item.SectionStart < 1 {
			item.SectionStart = 1
		}
		if item.SectionStart > len(item.SectionWords) {
			return Item{}, fmt.Errorf("curriculum item %d: section start %d exceeds %d sections", item.ID, item.SectionStart, len(item.SectionWords))
		}
	default:
		return Item{}, fmt.Errorf("curriculum item %d: unknown daily amount type %q", item.ID, item.AmountType)
	}

	return item, nil
}

// itemCapacity returns how many study days the item consumes.
func itemCapacity(item Item) (int, error) {
	switch item.AmountType {
	case AmountTypeCount:
		return ceilDiv(item.TotalWords, item.DailyWordCount), nil
	case AmountTypeSection:
		sections := len(item.SectionWords) - (item.SectionStart - 1)
		switch item.SectionAmount {
		case 0.5:
			return sections * 2, nil
		case 1:
			return sections, nil
		case 2:
			return ceilDiv(sections, 2), nil
		}
	}
	return 0, fmt.Errorf("curriculum item %d: unknown daily amount type %q", item.ID, item.AmountType)
}

// itemWindow computes the content window for the localDay-th study day
// within the item. localDay is 1-indexed and must be within capacity.
func itemWindow(item Item, localDay int) (*Assignment, error) {
	assignment := &Assignment{
		ItemID:   item.ID,
		ItemType: item.Type,
		LocalDay: localDay,
	}

	if item.AmountType == AmountTypeCount {
		start := (localDay-1)*item.DailyWordCount + 1
		end := localDay * item.DailyWordCount
		if end > item.TotalWords {
			end = item.TotalWords
		}
		assignment.Words = Window{Start: start, End: end}
		return assignment, nil
	}

	firstSection := item.SectionStart - 1 // 0-based index of the first studied section
	switch item.SectionAmount {
	case 1:
		index := firstSection + (localDay - 1)
		offset := wordOffset(item.SectionWords, index)
		assignment.Words = Window{Start: offset + 1, End: offset + item.SectionWords[index]}
		assignment.Sections = &SectionSpan{First: index + 1, Last: index + 1}

	case 0.5:
		index := firstSection + (localDay-1)/2
		offset := wordOffset(item.SectionWords, index)
		length := item.SectionWords[index]
		firstHalf := ceilDiv(length, 2)
		if (localDay-1)%2 == 0 {
			assignment.Words = Window{Start: offset + 1, End: offset + firstHalf}
			assignment.Half = HalfFirst
		} else {
			start := offset + firstHalf + 1
			end := offset + length
			if start > end {
				// One-word section: the second half repeats the word.
				start = end
			}
			assignment.Words = Window{Start: start, End: end}
			assignment.Half = HalfSecond
		}
		assignment.Sections = &SectionSpan{First: index + 1, Last: index + 1}

	case 2:
		index := firstSection + (localDay-1)*2
		last := index + 1
		if last > len(item.SectionWords)-1 {
			// No next section left: the day covers only the final section.
			last = index
		}
		offset := wordOffset(item.SectionWords, index)
		end := offset
		for i := index; i <= last; i++ {
			end += item.SectionWords[i]
		}
		assignment.Words = Window{Start: offset + 1, End: end}
		assignment.Sections = &SectionSpan{First: index + 1, Last: last + 1}

	default:
		return nil, fmt.Errorf("curriculum item %d: unknown daily section amount %v", item.ID, item.SectionAmount)
	}

	return assignment, nil
}

// wordOffset returns the number of words before the section at index.
func wordOffset(sectionWords []int, index int) int {
	offset := 0
	for i := 0; i < index; i++ {
		offset += sectionWords[i]
	}
	return offset
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
