package curriculum

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/curriculum/mock_repository.go -package=mock_curriculum

// Repository defines operations over curricula, items and enrollments.
type Repository interface {
	FindCurriculum(ctx context.Context, id int64) (*Curriculum, error)
	FindItems(ctx context.Context, curriculumID int64) ([]Item, error)
	FindEnrollmentByStudent(ctx context.Context, studentID int64) (*Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
	AdvanceProgress(ctx context.Context, enrollmentID, itemID int64, progress int) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindCurriculum returns a curriculum by id, or nil if not found.
func (r *DBRepository) FindCurriculum(ctx context.Context, id int64) (*Curriculum, error) {
	var curriculum Curriculum
	err := r.db.GetContext(ctx, &curriculum, "SELECT * FROM curriculums WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(curriculum) > %w", err)
	}
	return &curriculum, nil
}

// FindItems returns the items of a curriculum ordered by sequence.
func (r *DBRepository) FindItems(ctx context.Context, curriculumID int64) ([]Item, error) {
	var items []Item
	if err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM curriculum_items WHERE curriculum_id = ? ORDER BY sequence", curriculumID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(curriculum_items) > %w", err)
	}
	return items, nil
}

// FindEnrollmentByStudent returns the student's active enrollment, or nil if
// the student is not enrolled.
func (r *DBRepository) FindEnrollmentByStudent(ctx context.Context, studentID int64) (*Enrollment, error) {
	var enrollment Enrollment
	err := r.db.GetContext(ctx, &enrollment,
		"SELECT * FROM student_curriculums WHERE student_id = ? ORDER BY id DESC LIMIT 1", studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(student_curriculum) > %w", err)
	}
	return &enrollment, nil
}

// CreateEnrollment inserts a new enrollment and sets its id.
func (r *DBRepository) CreateEnrollment(ctx context.Context, enrollment *Enrollment) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO student_curriculums (student_id, curriculum_id, start_date, study_days, breaks, setting_overrides, current_item_id, current_progress)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		enrollment.StudentID, enrollment.CurriculumID, enrollment.StartDate,
		enrollment.StudyDays, enrollment.Breaks, enrollment.Overrides,
		enrollment.CurrentItemID, enrollment.CurrentProgress)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert student_curriculum) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	enrollment.ID = id
	return nil
}

// AdvanceProgress moves the enrollment cursor to the given item and progress
// value. It is called on test completion only; schedule resolution never
// touches the cursor.
func (r *DBRepository) AdvanceProgress(ctx context.Context, enrollmentID, itemID int64, progress int) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE student_curriculums SET current_item_id = ?, current_progress = ? WHERE id = ?",
		itemID, progress, enrollmentID); err != nil {
		return fmt.Errorf("db.ExecContext(update progress) > %w", err)
	}
	return nil
}
