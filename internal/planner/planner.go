// Package planner assembles daily study plans, review quizzes and test
// results on top of the curriculum, content and study-log repositories.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/wordplan/internal/account"
	"github.com/example/wordplan/internal/content"
	"github.com/example/wordplan/internal/curriculum"
	"github.com/example/wordplan/internal/dollar"
	"github.com/example/wordplan/internal/messaging"
	"github.com/example/wordplan/internal/review"
	"github.com/example/wordplan/internal/schedule"
	"github.com/example/wordplan/internal/studylog"
)

// ErrNotEnrolled is returned when a student has no curriculum enrollment.
var ErrNotEnrolled = errors.New("student is not enrolled in any curriculum")

// ErrNothingDue is returned when a result is submitted for a date with no
// assignment.
var ErrNothingDue = errors.New("no content is due on this date")

// Config carries the planner's scoring and reward settings.
type Config struct {
	// PassingScore is the minimum score counted as a pass.
	PassingScore int
	// PassReward is the number of reward dollars credited per passed test.
	PassReward int
}

// Service computes what each student studies, reviews and earns per day.
type Service struct {
	cfg         Config
	curriculums curriculum.Repository
	contents    content.Store
	studyLogs   studylog.Repository
	ledger      dollar.Ledger
	accounts    account.Repository
	messages    messaging.Repository
	notifier    messaging.Notifier
	resolver    *schedule.Resolver
	quizzes     *review.QuizBuilder
	logger      *slog.Logger
}

// NewService creates a planner service.
func NewService(
	cfg Config,
	curriculums curriculum.Repository,
	contents content.Store,
	studyLogs studylog.Repository,
	ledger dollar.Ledger,
	accounts account.Repository,
	messages messaging.Repository,
	notifier messaging.Notifier,
	resolver *schedule.Resolver,
	quizzes *review.QuizBuilder,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:         cfg,
		curriculums: curriculums,
		contents:    contents,
		studyLogs:   studyLogs,
		ledger:      ledger,
		accounts:    accounts,
		messages:    messages,
		notifier:    notifier,
		resolver:    resolver,
		quizzes:     quizzes,
		logger:      logger,
	}
}

// DayPlan is the resolved plan of one student on one date. Words holds the
// due words of a wordbook assignment in window order; it is empty for
// listening assignments and skip days.
type DayPlan struct {
	StudentID int64
	Date      schedule.Date
	Result    schedule.Result
	Words     []content.Word
}

// resolution is the raw material of one resolver run, kept so follow-up
// operations reuse the loaded content instead of re-fetching it.
type resolution struct {
	enrollment *curriculum.Enrollment
	items      []schedule.Item
	itemWords  map[int64][]content.Word
	itemsByID  map[int64]schedule.Item
	result     schedule.Result
}

func (s *Service) resolve(ctx context.Context, studentID int64, date schedule.Date) (*resolution, error) {
	enrollment, err := s.curriculums.FindEnrollmentByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("curriculums.FindEnrollmentByStudent > %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrNotEnrolled)
	}

	rows, err := s.curriculums.FindItems(ctx, enrollment.CurriculumID)
	if err != nil {
		return nil, fmt.Errorf("curriculums.FindItems > %w", err)
	}

	res := &resolution{
		enrollment: enrollment,
		itemWords:  make(map[int64][]content.Word, len(rows)),
		itemsByID:  make(map[int64]schedule.Item, len(rows)),
	}
	for _, row := range rows {
		item, words, err := s.scheduleItem(ctx, row)
		if err != nil {
			return nil, err
		}
		res.items = append(res.items, item)
		res.itemWords[item.ID] = words
		res.itemsByID[item.ID] = item
	}

	scheduleEnrollment, err := enrollment.ToSchedule()
	if err != nil {
		return nil, err
	}
	result, err := s.resolver.Resolve(scheduleEnrollment, res.items, date)
	if err != nil {
		return nil, fmt.Errorf("resolver.Resolve > %w", err)
	}
	res.result = result
	return res, nil
}

// scheduleItem loads the content behind a curriculum item and converts the
// row into the resolver's input.
func (s *Service) scheduleItem(ctx context.Context, row curriculum.Item) (schedule.Item, []content.Word, error) {
	item := schedule.Item{
		ID:             row.ID,
		Type:           schedule.ItemType(row.ItemType),
		AmountType:     schedule.AmountType(row.DailyAmountType),
		SectionAmount:  row.DailySectionAmount,
		SectionStart:   row.SectionStart,
		DailyWordCount: row.DailyWordCount,
	}

	switch item.Type {
	case schedule.ItemTypeWordbook:
		words, err := s.contents.FindWords(ctx, row.ContentID)
		if err != nil {
			return schedule.Item{}, nil, fmt.Errorf("contents.FindWords > %w", err)
		}
		item.TotalWords = len(words)
		item.SectionWords = content.SectionWordCounts(words)
		return item, words, nil

	case schedule.ItemTypeListening:
		sections, err := s.contents.FindListeningSections(ctx, row.ContentID)
		if err != nil {
			return schedule.Item{}, nil, fmt.Errorf("contents.FindListeningSections > %w", err)
		}
		for _, section := range sections {
			item.SectionWords = append(item.SectionWords, section.UnitCount)
			item.TotalWords += section.UnitCount
		}
		return item, nil, nil
	}

	return schedule.Item{}, nil, fmt.Errorf("curriculum item %d: unknown item type %q", row.ID, row.ItemType)
}

// PlanDay resolves what a student studies on a date. A day with no content
// comes back with a skip reason inside Result, not an error.
func (s *Service) PlanDay(ctx context.Context, studentID int64, date schedule.Date) (*DayPlan, error) {
	res, err := s.resolve(ctx, studentID, date)
	if err != nil {
		return nil, err
	}

	plan := &DayPlan{
		StudentID: studentID,
		Date:      date,
		Result:    res.result,
	}
	if assignment := res.result.Assignment; assignment != nil && assignment.ItemType == schedule.ItemTypeWordbook {
		words := res.itemWords[assignment.ItemID]
		plan.Words = words[assignment.Words.Start-1 : assignment.Words.End]
	}
	return plan, nil
}

// ReviewQuiz builds the multiple-choice review quiz preceding the date's
// assignment. It returns no questions on skip days, for listening
// assignments and on the first days of an item when nothing has been taught
// yet.
func (s *Service) ReviewQuiz(ctx context.Context, studentID int64, date schedule.Date) ([]review.Question, error) {
	res, err := s.resolve(ctx, studentID, date)
	if err != nil {
		return nil, err
	}
	assignment := res.result.Assignment
	if assignment == nil || assignment.ItemType != schedule.ItemTypeWordbook {
		return nil, nil
	}

	window, ok := review.Range(assignment.Words.End, assignment.Words.Len())
	if !ok {
		return nil, nil
	}

	words := res.itemWords[assignment.ItemID]
	pool := make([]review.Entry, 0, len(words))
	for _, word := range words {
		pool = append(pool, review.Entry{Term: word.Term, Meaning: word.Meaning})
	}
	questions, err := s.quizzes.Build(pool, window)
	if err != nil {
		return nil, fmt.Errorf("quizzes.Build > %w", err)
	}
	return questions, nil
}

// SubmitParams is one submitted test attempt.
type SubmitParams struct {
	StudentID    int64
	Date         schedule.Date
	Score        int
	WrongAnswers []string
}

// SubmitOutcome reports what a submission changed.
type SubmitOutcome struct {
	Log           *studylog.StudyLog
	Passed        bool
	Rewarded      int
	ItemCompleted bool
}

// SubmitResult records a test attempt for the date's assignment. A passing
// score credits reward dollars, advances the enrollment cursor and posts a
// progress message. Re-submitting the same date overwrites the earlier
// attempt; once a date has passed, later submissions never credit the
// reward or post the message again.
func (s *Service) SubmitResult(ctx context.Context, params SubmitParams) (*SubmitOutcome, error) {
	res, err := s.resolve(ctx, params.StudentID, params.Date)
	if err != nil {
		return nil, err
	}
	assignment := res.result.Assignment
	if assignment == nil {
		return nil, fmt.Errorf("student %d on %s (%s): %w",
			params.StudentID, params.Date, res.result.Reason, ErrNothingDue)
	}

	previous, err := s.studyLogs.FindByKey(ctx, params.StudentID, assignment.ItemID, params.Date)
	if err != nil {
		return nil, fmt.Errorf("studyLogs.FindByKey > %w", err)
	}
	alreadyPassed := previous != nil && previous.Passed(s.cfg.PassingScore)

	log := &studylog.StudyLog{
		StudentID:        params.StudentID,
		CurriculumItemID: assignment.ItemID,
		ScheduledDate:    params.Date,
		Status:           studylog.StatusCompleted,
		Score:            params.Score,
		WrongAnswers:     params.WrongAnswers,
	}
	if err := s.studyLogs.Upsert(ctx, log); err != nil {
		return nil, fmt.Errorf("studyLogs.Upsert > %w", err)
	}

	outcome := &SubmitOutcome{
		Log:    log,
		Passed: log.Passed(s.cfg.PassingScore),
	}
	if !outcome.Passed {
		return outcome, nil
	}

	item := res.itemsByID[assignment.ItemID]
	outcome.ItemCompleted = assignment.Words.End >= item.TotalWords

	// The reward, cursor and message all happened on the first pass.
	if alreadyPassed {
		return outcome, nil
	}

	if err := s.ledger.Append(ctx, &dollar.Entry{
		StudentID: params.StudentID,
		Amount:    s.cfg.PassReward,
		Reason:    fmt.Sprintf("passed test on %s with %d points", params.Date, params.Score),
	}); err != nil {
		return nil, fmt.Errorf("ledger.Append > %w", err)
	}
	outcome.Rewarded = s.cfg.PassReward

	if err := s.curriculums.AdvanceProgress(ctx, res.enrollment.ID, assignment.ItemID, assignment.Words.End); err != nil {
		return nil, fmt.Errorf("curriculums.AdvanceProgress > %w", err)
	}

	if err := s.postProgressMessage(ctx, params, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *Service) postProgressMessage(ctx context.Context, params SubmitParams, outcome *SubmitOutcome) error {
	studentName := fmt.Sprintf("student %d", params.StudentID)
	student, err := s.accounts.FindStudent(ctx, params.StudentID)
	if err != nil {
		return fmt.Errorf("accounts.FindStudent > %w", err)
	}
	if student != nil {
		studentName = student.Name
	}

	message := &messaging.Message{
		StudentID: params.StudentID,
		Kind:      messaging.KindTestResult,
		Body:      fmt.Sprintf("%s passed the %s test with %d points", studentName, params.Date, params.Score),
	}
	if outcome.ItemCompleted {
		message.Kind = messaging.KindItemCompleted
		message.Body = fmt.Sprintf("%s finished a curriculum item on %s", studentName, params.Date)
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return fmt.Errorf("messages.Create > %w", err)
	}

	// Delivery failures do not fail the submission; the message row stays
	// behind as the source of truth.
	if err := s.notifier.Notify(ctx, *message); err != nil {
		s.logger.Warn("failed to deliver progress message",
			"student_id", params.StudentID, "message_id", message.ID, "error", err)
	}
	return nil
}
