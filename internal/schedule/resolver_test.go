package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStudyDays(t *testing.T, tokens ...string) StudyDays {
	t.Helper()
	days, err := ParseStudyDays(tokens)
	require.NoError(t, err)
	return days
}

func TestParseStudyDays(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    []string
		wantErr bool
	}{
		{
			name:   "weekday pattern",
			tokens: []string{"mon", "wed", "fri"},
			want:   []string{"mon", "wed", "fri"},
		},
		{
			name:   "tokens are normalized and deduplicated",
			tokens: []string{"MON", " mon ", "Sun"},
			want:   []string{"sun", "mon"},
		},
		{
			name:    "unknown token",
			tokens:  []string{"mon", "monday"},
			wantErr: true,
		},
		{
			name:    "empty set",
			tokens:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ParseStudyDays(tt.tokens)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, days.Tokens())
		})
	}
}

// The worked example from the curriculum pacing design: enrollment starts
// Monday 2025-01-06 with study days mon/wed/fri and a single 25-word item
// paced at 10 words per day.
func TestResolver_Resolve_CountPacing(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "wed", "fri"),
	}
	items := []Item{
		{ID: 11, Type: ItemTypeWordbook, AmountType: AmountTypeCount, DailyWordCount: 10, TotalWords: 25},
	}

	tests := []struct {
		name       string
		target     Date
		wantWindow Window
		wantReason SkipReason
		wantDay    int
	}{
		{
			name:       "study day 1",
			target:     NewDate(2025, time.January, 6),
			wantWindow: Window{Start: 1, End: 10},
			wantDay:    1,
		},
		{
			name:       "study day 2",
			target:     NewDate(2025, time.January, 8),
			wantWindow: Window{Start: 11, End: 20},
			wantDay:    2,
		},
		{
			name:       "study day 3 is clamped to the content size",
			target:     NewDate(2025, time.January, 10),
			wantWindow: Window{Start: 21, End: 25},
			wantDay:    3,
		},
		{
			name:       "study day 4 has no content left",
			target:     NewDate(2025, time.January, 13),
			wantReason: SkipCompleted,
		},
		{
			name:       "day before enrollment",
			target:     NewDate(2025, time.January, 5),
			wantReason: SkipBeforeEnrollment,
		},
		{
			name:       "tuesday is not a study day",
			target:     NewDate(2025, time.January, 7),
			wantReason: SkipNotStudyDay,
		},
	}

	resolver := NewResolver(0, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := resolver.Resolve(enrollment, items, tt.target)
			require.NoError(t, err)

			if tt.wantReason != SkipNone {
				assert.False(t, result.Assigned())
				assert.Equal(t, tt.wantReason, result.Reason)
				return
			}

			require.True(t, result.Assigned())
			assert.Equal(t, int64(11), result.Assignment.ItemID)
			assert.Equal(t, tt.wantWindow, result.Assignment.Words)
			assert.Equal(t, tt.wantDay, result.Assignment.StudyDay)
		})
	}
}

func TestResolver_Resolve_Breaks(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "wed", "fri"),
		Breaks: []Break{
			{Start: NewDate(2025, time.January, 8), End: NewDate(2025, time.January, 9)},
		},
	}
	items := []Item{
		{ID: 11, Type: ItemTypeWordbook, AmountType: AmountTypeCount, DailyWordCount: 10, TotalWords: 100},
	}
	resolver := NewResolver(0, nil)

	// Wednesday Jan 8 falls inside the break: nothing is assignable.
	result, err := resolver.Resolve(enrollment, items, NewDate(2025, time.January, 8))
	require.NoError(t, err)
	assert.Equal(t, SkipOnBreak, result.Reason)

	// A weekday outside the study-day set reports not_study_day even when it
	// also falls inside a break.
	enrollment.Breaks = append(enrollment.Breaks, Break{
		Start: NewDate(2025, time.January, 7), End: NewDate(2025, time.January, 7),
	})
	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 7))
	require.NoError(t, err)
	assert.Equal(t, SkipNotStudyDay, result.Reason)

	// Friday Jan 10 is study day 2, not 3: the broken Wednesday did not count.
	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 10))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, 2, result.Assignment.StudyDay)
	assert.Equal(t, Window{Start: 11, End: 20}, result.Assignment.Words)
}

func TestResolver_Resolve_WalksItemsInOrder(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6), // Monday
		StudyDays: mustStudyDays(t, "mon", "tue", "wed", "thu", "fri"),
	}
	items := []Item{
		// 25 words at 10/day: 3 study days.
		{ID: 1, Type: ItemTypeWordbook, AmountType: AmountTypeCount, DailyWordCount: 10, TotalWords: 25},
		// 2 sections, one per day: 2 study days.
		{ID: 2, Type: ItemTypeListening, AmountType: AmountTypeSection, SectionAmount: 1, SectionWords: []int{8, 12}},
	}
	resolver := NewResolver(0, nil)

	// Thursday Jan 9 is study day 4: first day of the second item.
	result, err := resolver.Resolve(enrollment, items, NewDate(2025, time.January, 9))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, int64(2), result.Assignment.ItemID)
	assert.Equal(t, ItemTypeListening, result.Assignment.ItemType)
	assert.Equal(t, 1, result.Assignment.LocalDay)
	assert.Equal(t, Window{Start: 1, End: 8}, result.Assignment.Words)
	assert.Equal(t, &SectionSpan{First: 1, Last: 1}, result.Assignment.Sections)

	// Friday Jan 10 covers the second section.
	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 10))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 9, End: 20}, result.Assignment.Words)
	assert.Equal(t, &SectionSpan{First: 2, Last: 2}, result.Assignment.Sections)

	// Monday Jan 13 is past both items.
	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 13))
	require.NoError(t, err)
	assert.Equal(t, SkipCompleted, result.Reason)
}

func TestResolver_Resolve_HalfSectionPacing(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "tue", "wed", "thu", "fri"),
	}
	// One 9-word section and one 1-word section, half a section per day.
	items := []Item{
		{ID: 5, Type: ItemTypeWordbook, AmountType: AmountTypeSection, SectionAmount: 0.5, SectionWords: []int{9, 1}},
	}
	resolver := NewResolver(0, nil)

	tests := []struct {
		name       string
		target     Date
		wantWindow Window
		wantHalf   HalfSection
		wantSpan   SectionSpan
	}{
		{
			name:       "first half rounds up",
			target:     NewDate(2025, time.January, 6),
			wantWindow: Window{Start: 1, End: 5},
			wantHalf:   HalfFirst,
			wantSpan:   SectionSpan{First: 1, Last: 1},
		},
		{
			name:       "second half takes the remainder",
			target:     NewDate(2025, time.January, 7),
			wantWindow: Window{Start: 6, End: 9},
			wantHalf:   HalfSecond,
			wantSpan:   SectionSpan{First: 1, Last: 1},
		},
		{
			name:       "single-word section, first half",
			target:     NewDate(2025, time.January, 8),
			wantWindow: Window{Start: 10, End: 10},
			wantHalf:   HalfFirst,
			wantSpan:   SectionSpan{First: 2, Last: 2},
		},
		{
			name:       "single-word section, second half repeats the word",
			target:     NewDate(2025, time.January, 9),
			wantWindow: Window{Start: 10, End: 10},
			wantHalf:   HalfSecond,
			wantSpan:   SectionSpan{First: 2, Last: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := resolver.Resolve(enrollment, items, tt.target)
			require.NoError(t, err)
			require.True(t, result.Assigned())
			assert.Equal(t, tt.wantWindow, result.Assignment.Words)
			assert.Equal(t, tt.wantHalf, result.Assignment.Half)
			assert.Equal(t, &tt.wantSpan, result.Assignment.Sections)
		})
	}
}

func TestResolver_Resolve_DoubleSectionPacing(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "tue", "wed", "thu", "fri"),
	}
	// Three sections, two per day: the last day has no next section and
	// covers only the final one.
	items := []Item{
		{ID: 7, Type: ItemTypeWordbook, AmountType: AmountTypeSection, SectionAmount: 2, SectionWords: []int{10, 10, 5}},
	}
	resolver := NewResolver(0, nil)

	result, err := resolver.Resolve(enrollment, items, NewDate(2025, time.January, 6))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 1, End: 20}, result.Assignment.Words)
	assert.Equal(t, &SectionSpan{First: 1, Last: 2}, result.Assignment.Sections)

	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 7))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 21, End: 25}, result.Assignment.Words)
	assert.Equal(t, &SectionSpan{First: 3, Last: 3}, result.Assignment.Sections)

	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 8))
	require.NoError(t, err)
	assert.Equal(t, SkipCompleted, result.Reason)
}

func TestResolver_Resolve_SectionStart(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "tue", "wed", "thu", "fri"),
	}
	items := []Item{
		{ID: 9, Type: ItemTypeWordbook, AmountType: AmountTypeSection, SectionAmount: 1, SectionStart: 3, SectionWords: []int{10, 10, 6, 4}},
	}
	resolver := NewResolver(0, nil)

	// Day 1 starts at section 3; the skipped sections still anchor the
	// word indexes.
	result, err := resolver.Resolve(enrollment, items, NewDate(2025, time.January, 6))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 21, End: 26}, result.Assignment.Words)
	assert.Equal(t, &SectionSpan{First: 3, Last: 3}, result.Assignment.Sections)

	// Only two sections remain, so day 3 completes the curriculum.
	result, err = resolver.Resolve(enrollment, items, NewDate(2025, time.January, 8))
	require.NoError(t, err)
	assert.Equal(t, SkipCompleted, result.Reason)
}

func TestResolver_Resolve_Overrides(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "tue", "wed", "thu", "fri"),
		Overrides: &Overrides{
			AmountType:     AmountTypeCount,
			DailyWordCount: 5,
			TestType:       "dictation",
		},
	}
	// The item is section-paced, but the student's overrides switch the
	// whole curriculum to 5 words per day.
	items := []Item{
		{ID: 3, Type: ItemTypeWordbook, AmountType: AmountTypeSection, SectionAmount: 1, SectionWords: []int{10, 10}, TotalWords: 20},
	}
	resolver := NewResolver(0, nil)

	result, err := resolver.Resolve(enrollment, items, NewDate(2025, time.January, 7))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 6, End: 10}, result.Assignment.Words)
	assert.Equal(t, "dictation", result.Assignment.TestType)
	assert.Nil(t, result.Assignment.Sections)
}

func TestResolver_Resolve_FallbackWordCount(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "tue", "wed", "thu", "fri"),
	}
	// No daily amount configuration at all: the resolver paces by the
	// fallback word count instead of failing.
	items := []Item{
		{ID: 4, Type: ItemTypeWordbook, TotalWords: 90},
	}

	result, err := NewResolver(0, nil).Resolve(enrollment, items, NewDate(2025, time.January, 7))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 31, End: 60}, result.Assignment.Words)

	result, err = NewResolver(45, nil).Resolve(enrollment, items, NewDate(2025, time.January, 7))
	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, Window{Start: 46, End: 90}, result.Assignment.Words)
}

func TestResolver_Resolve_MalformedInput(t *testing.T) {
	start := NewDate(2025, time.January, 6)
	weekdays := mustStudyDays(t, "mon", "tue", "wed", "thu", "fri")

	tests := []struct {
		name       string
		enrollment Enrollment
		items      []Item
		wantErr    string
	}{
		{
			name:       "empty study days",
			enrollment: Enrollment{StudentID: 1, StartDate: start},
			wantErr:    "study days are empty",
		},
		{
			name:       "missing start date",
			enrollment: Enrollment{StudentID: 1, StudyDays: weekdays},
			wantErr:    "start date is not set",
		},
		{
			name:       "unknown item type",
			enrollment: Enrollment{StudentID: 1, StartDate: start, StudyDays: weekdays},
			items: []Item{
				{ID: 1, Type: "video", AmountType: AmountTypeCount, DailyWordCount: 10, TotalWords: 10},
			},
			wantErr: "unknown item type",
		},
		{
			name:       "invalid section amount",
			enrollment: Enrollment{StudentID: 1, StartDate: start, StudyDays: weekdays},
			items: []Item{
				{ID: 1, Type: ItemTypeWordbook, AmountType: AmountTypeSection, SectionAmount: 3, SectionWords: []int{10}},
			},
			wantErr: "daily section amount",
		},
		{
			name:       "section-paced item without sections",
			enrollment: Enrollment{StudentID: 1, StartDate: start, StudyDays: weekdays},
			items: []Item{
				{ID: 1, Type: ItemTypeWordbook, AmountType: AmountTypeSection, SectionAmount: 1},
			},
			wantErr: "has no sections",
		},
		{
			name:       "non-positive word count",
			enrollment: Enrollment{StudentID: 1, StartDate: start, StudyDays: weekdays},
			items: []Item{
				{ID: 1, Type: ItemTypeWordbook, AmountType: AmountTypeCount, DailyWordCount: -1, TotalWords: 10},
			},
			wantErr: "daily word count",
		},
	}

	resolver := NewResolver(0, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve(tt.enrollment, tt.items, NewDate(2025, time.January, 6))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// Resolution is a pure function: identical inputs give identical outputs,
// and consecutive study days produce adjacent, non-overlapping windows.
func TestResolver_Resolve_PureAndMonotonic(t *testing.T) {
	enrollment := Enrollment{
		StudentID: 1,
		StartDate: NewDate(2025, time.January, 6),
		StudyDays: mustStudyDays(t, "mon", "wed", "fri"),
		Breaks: []Break{
			{Start: NewDate(2025, time.January, 15), End: NewDate(2025, time.January, 17)},
		},
	}
	items := []Item{
		{ID: 1, Type: ItemTypeWordbook, AmountType: AmountTypeCount, DailyWordCount: 7, TotalWords: 60},
		{ID: 2, Type: ItemTypeListening, AmountType: AmountTypeSection, SectionAmount: 1, SectionWords: []int{5, 5, 5}},
	}
	resolver := NewResolver(0, nil)

	lastEnd := 0
	lastItem := int64(0)
	for offset := 0; offset < 40; offset++ {
		target := enrollment.StartDate.AddDays(offset)

		first, err := resolver.Resolve(enrollment, items, target)
		require.NoError(t, err)
		second, err := resolver.Resolve(enrollment, items, target)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		if !first.Assigned() {
			continue
		}
		if first.Assignment.ItemID != lastItem {
			lastItem = first.Assignment.ItemID
			lastEnd = 0
		}
		assert.Equal(t, lastEnd+1, first.Assignment.Words.Start, "windows must be adjacent on %s", target)
		lastEnd = first.Assignment.Words.End
	}
}
