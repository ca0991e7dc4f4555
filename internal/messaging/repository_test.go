package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "mysql"), mock
}

func TestDBRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO messages").
		WithArgs(int64(3), KindTestResult, "Jisoo passed the 2025-01-06 wordbook test with 92 points").
		WillReturnResult(sqlmock.NewResult(15, 1))

	repo := NewDBRepository(db)
	message := &Message{
		StudentID: 3,
		Kind:      KindTestResult,
		Body:      "Jisoo passed the 2025-01-06 wordbook test with 92 points",
	}
	require.NoError(t, repo.Create(context.Background(), message))
	assert.Equal(t, int64(15), message.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_FindByStudent(t *testing.T) {
	now := time.Date(2025, 1, 6, 18, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM messages WHERE student_id = \\? ORDER BY id DESC LIMIT \\?").
		WithArgs(int64(3), 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "kind", "body", "created_at"}).
			AddRow(int64(16), int64(3), KindItemCompleted, "Jisoo finished the wordbook", now).
			AddRow(int64(15), int64(3), KindTestResult, "Jisoo passed the test", now))

	repo := NewDBRepository(db)
	got, err := repo.FindByStudent(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, KindItemCompleted, got[0].Kind)
	assert.Equal(t, int64(15), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
