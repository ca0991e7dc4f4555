package content

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*DBStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewDBStore(sqlx.NewDb(db, "mysql")), mock
}

func TestDBStore_FindWordbook(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Wordbook
		wantErr   bool
	}{
		{
			name: "returns wordbook",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "level", "created_at", "updated_at"}).
					AddRow(3, "Essential Words 1", "beginner", now, now)
				mock.ExpectQuery("SELECT \\* FROM wordbooks WHERE id = \\?").
					WithArgs(int64(3)).
					WillReturnRows(rows)
			},
			want: &Wordbook{ID: 3, Name: "Essential Words 1", Level: "beginner", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "not found returns nil",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM wordbooks WHERE id = \\?").
					WithArgs(int64(3)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "level", "created_at", "updated_at"}))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM wordbooks WHERE id = \\?").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.setupMock(mock)

			got, err := store.FindWordbook(context.Background(), 3)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_FindWords(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "wordbook_id", "position", "section", "term", "meaning", "example", "created_at", "updated_at"}).
		AddRow(1, 3, 1, 1, "apple", "사과", "", now, now).
		AddRow(2, 3, 2, 1, "banana", "바나나", "", now, now)
	mock.ExpectQuery("SELECT \\* FROM words WHERE wordbook_id = \\? ORDER BY position").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	words, err := store.FindWords(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "apple", words[0].Term)
	assert.Equal(t, 2, words[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_FindListeningSections(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "test_id", "position", "title", "unit_count", "created_at", "updated_at"}).
		AddRow(1, 7, 1, "Part 1", 10, now, now).
		AddRow(2, 7, 2, "Part 2", 12, now, now)
	mock.ExpectQuery("SELECT \\* FROM listening_sections WHERE test_id = \\? ORDER BY position").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	sections, err := store.FindListeningSections(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, 12, sections[1].UnitCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_CreateWordbook(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO wordbooks \\(name, level\\) VALUES \\(\\?, \\?\\)").
		WithArgs("Essential Words 1", "beginner").
		WillReturnResult(sqlmock.NewResult(42, 1))

	wordbook := &Wordbook{Name: "Essential Words 1", Level: "beginner"}
	require.NoError(t, store.CreateWordbook(context.Background(), wordbook))
	assert.Equal(t, int64(42), wordbook.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_BatchCreateWords(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO words \\(wordbook_id, position, section, term, meaning, example\\) VALUES \\(\\?, \\?, \\?, \\?, \\?, \\?\\), \\(\\?, \\?, \\?, \\?, \\?, \\?\\)").
		WithArgs(
			int64(3), 1, 1, "apple", "사과", "",
			int64(3), 2, 1, "banana", "바나나", "",
		).
		WillReturnResult(sqlmock.NewResult(1, 2))

	words := []Word{
		{WordbookID: 3, Position: 1, Section: 1, Term: "apple", Meaning: "사과"},
		{WordbookID: 3, Position: 2, Section: 1, Term: "banana", Meaning: "바나나"},
	}
	require.NoError(t, store.BatchCreateWords(context.Background(), words))
	assert.NoError(t, mock.ExpectationsWereMet())

	// Empty input is a no-op.
	require.NoError(t, store.BatchCreateWords(context.Background(), nil))
}

func TestDBStore_ImportWordbook(t *testing.T) {
	t.Run("commits wordbook and words together", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO wordbooks \\(name, level\\) VALUES \\(\\?, \\?\\)").
			WithArgs("Essential Words 1", "beginner").
			WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectExec("INSERT INTO words \\(wordbook_id, position, section, term, meaning, example\\) VALUES \\(\\?, \\?, \\?, \\?, \\?, \\?\\), \\(\\?, \\?, \\?, \\?, \\?, \\?\\)").
			WithArgs(
				int64(42), 1, 1, "apple", "사과", "",
				int64(42), 2, 1, "banana", "바나나", "",
			).
			WillReturnResult(sqlmock.NewResult(1, 2))
		mock.ExpectCommit()

		wordbook := &Wordbook{Name: "Essential Words 1", Level: "beginner"}
		words := []Word{
			{Position: 1, Section: 1, Term: "apple", Meaning: "사과"},
			{Position: 2, Section: 1, Term: "banana", Meaning: "바나나"},
		}
		require.NoError(t, store.ImportWordbook(context.Background(), wordbook, words))
		assert.Equal(t, int64(42), wordbook.ID)
		assert.Equal(t, int64(42), words[0].WordbookID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when inserting words fails", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO wordbooks").
			WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectExec("INSERT INTO words").
			WillReturnError(fmt.Errorf("data too long"))
		mock.ExpectRollback()

		err := store.ImportWordbook(context.Background(),
			&Wordbook{Name: "Book"},
			[]Word{{Position: 1, Section: 1, Term: "apple", Meaning: "사과"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data too long")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSectionWordCounts(t *testing.T) {
	words := []Word{
		{Position: 1, Section: 1},
		{Position: 2, Section: 1},
		{Position: 3, Section: 2},
		{Position: 4, Section: 3},
		{Position: 5, Section: 3},
		{Position: 6, Section: 3},
	}
	assert.Equal(t, []int{2, 1, 3}, SectionWordCounts(words))
	assert.Nil(t, SectionWordCounts(nil))
}

func TestSectionWordCounts_UnnumberedSection(t *testing.T) {
	// Words whose rows never carried a section number still count as one
	// section instead of panicking.
	words := []Word{
		{Position: 1, Section: 0},
		{Position: 2, Section: 0},
	}
	assert.Equal(t, []int{2}, SectionWordCounts(words))
}
