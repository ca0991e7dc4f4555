// Package dollar provides the academy's reward-dollar ledger. The ledger is
// append-only; a balance is always the sum of a student's entries.
package dollar

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=ledger.go -destination=../mocks/dollar/mock_ledger.go -package=mock_dollar

// Entry is one reward transaction. Amount is positive for credits (test
// passed, attendance) and negative for debits (reward shop purchases).
type Entry struct {
	ID        int64     `db:"id"`
	StudentID int64     `db:"student_id"`
	Amount    int       `db:"amount"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

// Ledger defines operations over reward dollars.
type Ledger interface {
	Append(ctx context.Context, entry *Entry) error
	Balance(ctx context.Context, studentID int64) (int, error)
	History(ctx context.Context, studentID int64) ([]Entry, error)
}

// DBLedger implements Ledger using MySQL.
type DBLedger struct {
	db *sqlx.DB
}

// NewDBLedger creates a new DBLedger.
func NewDBLedger(db *sqlx.DB) *DBLedger {
	return &DBLedger{db: db}
}

// Append records one transaction and sets its id.
func (l *DBLedger) Append(ctx context.Context, entry *Entry) error {
	if entry.Amount == 0 {
		return fmt.Errorf("ledger entry for student %d has zero amount", entry.StudentID)
	}

	result, err := l.db.ExecContext(ctx,
		"INSERT INTO dollar_entries (student_id, amount, reason) VALUES (?, ?, ?)",
		entry.StudentID, entry.Amount, entry.Reason)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert dollar_entry) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	entry.ID = id
	return nil
}

// Balance returns the sum of a student's entries.
func (l *DBLedger) Balance(ctx context.Context, studentID int64) (int, error) {
	var balance int
	if err := l.db.GetContext(ctx, &balance,
		"SELECT COALESCE(SUM(amount), 0) FROM dollar_entries WHERE student_id = ?", studentID); err != nil {
		return 0, fmt.Errorf("db.GetContext(dollar balance) > %w", err)
	}
	return balance, nil
}

// History returns a student's transactions, newest first.
func (l *DBLedger) History(ctx context.Context, studentID int64) ([]Entry, error) {
	var entries []Entry
	if err := l.db.SelectContext(ctx, &entries,
		"SELECT * FROM dollar_entries WHERE student_id = ? ORDER BY id DESC", studentID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dollar_entries) > %w", err)
	}
	return entries, nil
}
