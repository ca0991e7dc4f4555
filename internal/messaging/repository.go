// Package messaging stores student progress messages and delivers them
// to an external webhook.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/messaging/mock_repository.go -package=mock_messaging

// Message is a progress message addressed to a student's teacher.
type Message struct {
	ID        int64     `db:"id"`
	StudentID int64     `db:"student_id"`
	Kind      string    `db:"kind"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// Message kinds.
const (
	KindTestResult    = "test_result"
	KindItemCompleted = "item_completed"
)

// Repository persists messages.
type Repository interface {
	Create(ctx context.Context, message *Message) error
	FindByStudent(ctx context.Context, studentID int64, limit int) ([]Message, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a message and fills in its id.
func (r *DBRepository) Create(ctx context.Context, message *Message) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (student_id, kind, body) VALUES (?, ?, ?)",
		message.StudentID, message.Kind, message.Body)
	if err != nil {
		return fmt.Errorf("db.ExecContext(message) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId > %w", err)
	}
	message.ID = id
	return nil
}

// FindByStudent returns a student's most recent messages.
func (r *DBRepository) FindByStudent(ctx context.Context, studentID int64, limit int) ([]Message, error) {
	var messages []Message
	if err := r.db.SelectContext(ctx, &messages,
		"SELECT * FROM messages WHERE student_id = ? ORDER BY id DESC LIMIT ?",
		studentID, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(messages) > %w", err)
	}
	return messages, nil
}
