// Package studylog provides study-log domain models and repository
// interfaces. A study log is the only persisted record of what actually
// happened on a scheduled study day.
package studylog

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/wordplan/internal/schedule"
)

//go:generate mockgen -source=repository.go -destination=../mocks/studylog/mock_repository.go -package=mock_studylog

// Status of one scheduled study attempt.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// WrongAnswerList is a JSON-encoded list of missed terms in a TEXT column.
type WrongAnswerList []string

// Value implements the driver.Valuer interface.
func (w WrongAnswerList) Value() (driver.Value, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal > %w", err)
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface.
func (w *WrongAnswerList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	case nil:
		return nil
	}
	return fmt.Errorf("unable to scan %T as JSON", src)
}

// StudyLog is one attempt row per (student, curriculum item, scheduled date).
type StudyLog struct {
	ID               int64           `db:"id"`
	StudentID        int64           `db:"student_id"`
	CurriculumItemID int64           `db:"curriculum_item_id"`
	ScheduledDate    schedule.Date   `db:"scheduled_date"`
	Status           string          `db:"status"`
	Score            int             `db:"score"`
	WrongAnswers     WrongAnswerList `db:"wrong_answers"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// Passed reports whether the attempt completed with a passing score.
func (l StudyLog) Passed(passingScore int) bool {
	return l.Status == StatusCompleted && l.Score >= passingScore
}

// Repository defines operations for managing study logs.
type Repository interface {
	FindByStudent(ctx context.Context, studentID int64) ([]StudyLog, error)
	FindByKey(ctx context.Context, studentID, itemID int64, date schedule.Date) (*StudyLog, error)
	Upsert(ctx context.Context, log *StudyLog) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByStudent returns all study logs of a student ordered by date.
func (r *DBRepository) FindByStudent(ctx context.Context, studentID int64) ([]StudyLog, error) {
	var logs []StudyLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM study_logs WHERE student_id = ? ORDER BY scheduled_date, id", studentID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(study_logs) > %w", err)
	}
	return logs, nil
}

// FindByKey returns the log for one (student, item, date) key, or nil if the
// attempt was never recorded.
func (r *DBRepository) FindByKey(ctx context.Context, studentID, itemID int64, date schedule.Date) (*StudyLog, error) {
	var log StudyLog
	err := r.db.GetContext(ctx, &log,
		"SELECT * FROM study_logs WHERE student_id = ? AND curriculum_item_id = ? AND scheduled_date = ?",
		studentID, itemID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(study_log) > %w", err)
	}
	return &log, nil
}

// Upsert inserts the log or, when the (student, item, date) key already
// exists, updates its status, score and wrong answers. The
// LAST_INSERT_ID(id) assignment makes the update branch report the
// existing row's id, so log.ID is filled on both branches.
func (r *DBRepository) Upsert(ctx context.Context, log *StudyLog) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO study_logs (student_id, curriculum_item_id, scheduled_date, status, score, wrong_answers)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), status = VALUES(status), score = VALUES(score), wrong_answers = VALUES(wrong_answers)`,
		log.StudentID, log.CurriculumItemID, log.ScheduledDate, log.Status, log.Score, log.WrongAnswers)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert study_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId > %w", err)
	}
	log.ID = id
	return nil
}
