// Package statistics aggregates study logs into per-period progress numbers.
package statistics

import (
	"fmt"
	"sort"

	"github.com/example/wordplan/internal/studylog"
)

// PeriodStatistics holds statistics for a time period
type PeriodStatistics struct {
	Period      string // "2025-01" for monthly, "2025" for yearly
	Attempts    int    // Completed test attempts in the period
	Passed      int    // Attempts at or above the passing score
	ItemsUnique int    // Unique curriculum items tested in the period
}

// PassRate returns the share of passed attempts, 0 when there are none.
func (s PeriodStatistics) PassRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Attempts)
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	Attempts    int // Total completed attempts across all periods
	Passed      int // Total passed attempts across all periods
	ItemsUnique int // Unique curriculum items tested (deduplicated across periods)
}

// PassRate returns the share of passed attempts, 0 when there are none.
func (s AggregateStatistics) PassRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Attempts)
}

// Result holds both per-period and aggregate statistics
type Result struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	attempts    int
	passed      int
	itemsUnique map[int64]struct{}
}

// Calculate aggregates completed study logs per month. It accepts optional
// year and month filters (0 means no filter). Pending and in-progress logs
// are ignored; an attempt passes at or above passingScore.
func Calculate(logs []studylog.StudyLog, passingScore, year, month int) Result {
	stats := make(map[string]*periodData)
	globalItemsUnique := make(map[int64]struct{})

	var totalAttempts, totalPassed int
	for _, log := range logs {
		if log.Status != studylog.StatusCompleted {
			continue
		}
		if log.ScheduledDate.IsZero() {
			continue
		}

		logYear := log.ScheduledDate.Year()
		logMonth := int(log.ScheduledDate.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		if stats[period] == nil {
			stats[period] = &periodData{itemsUnique: make(map[int64]struct{})}
		}

		stats[period].attempts++
		totalAttempts++
		if log.Passed(passingScore) {
			stats[period].passed++
			totalPassed++
		}
		stats[period].itemsUnique[log.CurriculumItemID] = struct{}{}
		globalItemsUnique[log.CurriculumItemID] = struct{}{}
	}

	periods := make([]PeriodStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, PeriodStatistics{
			Period:      period,
			Attempts:    data.attempts,
			Passed:      data.passed,
			ItemsUnique: len(data.itemsUnique),
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return Result{
		Periods: periods,
		Aggregate: AggregateStatistics{
			Attempts:    totalAttempts,
			Passed:      totalPassed,
			ItemsUnique: len(globalItemsUnique),
		},
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}
