// Package account provides student and teacher account models and lookups.
package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/account/mock_repository.go -package=mock_account

// Student is a student account row.
type Student struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Grade     string    `db:"grade"`
	TeacherID int64     `db:"teacher_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Teacher is a teacher account row.
type Teacher struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repository defines account lookups.
type Repository interface {
	FindStudent(ctx context.Context, id int64) (*Student, error)
	FindStudentsByTeacher(ctx context.Context, teacherID int64) ([]Student, error)
	FindTeacher(ctx context.Context, id int64) (*Teacher, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindStudent returns a student by id, or nil if not found.
func (r *DBRepository) FindStudent(ctx context.Context, id int64) (*Student, error) {
	var student Student
	err := r.db.GetContext(ctx, &student, "SELECT * FROM students WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(student) > %w", err)
	}
	return &student, nil
}

// FindStudentsByTeacher returns a teacher's students ordered by name.
func (r *DBRepository) FindStudentsByTeacher(ctx context.Context, teacherID int64) ([]Student, error) {
	var students []Student
	if err := r.db.SelectContext(ctx, &students,
		"SELECT * FROM students WHERE teacher_id = ? ORDER BY name", teacherID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(students) > %w", err)
	}
	return students, nil
}

// FindTeacher returns a teacher by id, or nil if not found.
func (r *DBRepository) FindTeacher(ctx context.Context, id int64) (*Teacher, error) {
	var teacher Teacher
	err := r.db.GetContext(ctx, &teacher, "SELECT * FROM teachers WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(teacher) > %w", err)
	}
	return &teacher, nil
}
