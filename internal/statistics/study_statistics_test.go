package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wordplan/internal/schedule"
	"github.com/example/wordplan/internal/studylog"
)

func completedLog(itemID int64, date schedule.Date, score int) studylog.StudyLog {
	return studylog.StudyLog{
		CurriculumItemID: itemID,
		ScheduledDate:    date,
		Status:           studylog.StatusCompleted,
		Score:            score,
	}
}

func TestCalculate(t *testing.T) {
	logs := []studylog.StudyLog{
		completedLog(11, schedule.NewDate(2025, 1, 6), 90),
		completedLog(11, schedule.NewDate(2025, 1, 8), 70),
		completedLog(12, schedule.NewDate(2025, 1, 10), 85),
		completedLog(12, schedule.NewDate(2025, 2, 3), 95),
		completedLog(13, schedule.NewDate(2024, 12, 20), 100),
		// Pending logs are not attempts.
		{CurriculumItemID: 14, ScheduledDate: schedule.NewDate(2025, 1, 13), Status: studylog.StatusPending},
	}

	tests := []struct {
		name          string
		year, month   int
		wantPeriods   []PeriodStatistics
		wantAggregate AggregateStatistics
	}{
		{
			name: "no filter aggregates all periods newest first",
			wantPeriods: []PeriodStatistics{
				{Period: "2025-02", Attempts: 1, Passed: 1, ItemsUnique: 1},
				{Period: "2025-01", Attempts: 3, Passed: 2, ItemsUnique: 2},
				{Period: "2024-12", Attempts: 1, Passed: 1, ItemsUnique: 1},
			},
			wantAggregate: AggregateStatistics{Attempts: 5, Passed: 4, ItemsUnique: 3},
		},
		{
			name: "year filter",
			year: 2025,
			wantPeriods: []PeriodStatistics{
				{Period: "2025-02", Attempts: 1, Passed: 1, ItemsUnique: 1},
				{Period: "2025-01", Attempts: 3, Passed: 2, ItemsUnique: 2},
			},
			wantAggregate: AggregateStatistics{Attempts: 4, Passed: 3, ItemsUnique: 2},
		},
		{
			name:  "year and month filter",
			year:  2025,
			month: 1,
			wantPeriods: []PeriodStatistics{
				{Period: "2025-01", Attempts: 3, Passed: 2, ItemsUnique: 2},
			},
			wantAggregate: AggregateStatistics{Attempts: 3, Passed: 2, ItemsUnique: 2},
		},
		{
			name:          "filter matching nothing",
			year:          2023,
			wantPeriods:   []PeriodStatistics{},
			wantAggregate: AggregateStatistics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(logs, 80, tt.year, tt.month)
			assert.Equal(t, tt.wantPeriods, got.Periods)
			assert.Equal(t, tt.wantAggregate, got.Aggregate)
		})
	}
}

func TestCalculate_EmptyLogs(t *testing.T) {
	got := Calculate(nil, 80, 0, 0)
	require.Empty(t, got.Periods)
	assert.Zero(t, got.Aggregate.Attempts)
	assert.Zero(t, got.Aggregate.PassRate())
}

func TestPeriodStatistics_PassRate(t *testing.T) {
	assert.Equal(t, 0.5, PeriodStatistics{Attempts: 4, Passed: 2}.PassRate())
	assert.Zero(t, PeriodStatistics{}.PassRate())
}
