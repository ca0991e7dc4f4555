package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/wordplan/internal/database"
)

//go:generate mockgen -source=store.go -destination=../mocks/content/mock_store.go -package=mock_content

// Store defines read and write access to wordbook and listening content.
type Store interface {
	FindWordbook(ctx context.Context, id int64) (*Wordbook, error)
	FindWords(ctx context.Context, wordbookID int64) ([]Word, error)
	FindListeningTest(ctx context.Context, id int64) (*ListeningTest, error)
	FindListeningSections(ctx context.Context, testID int64) ([]ListeningSection, error)
	CreateWordbook(ctx context.Context, wordbook *Wordbook) error
	BatchCreateWords(ctx context.Context, words []Word) error
	ImportWordbook(ctx context.Context, wordbook *Wordbook, words []Word) error
}

// DBStore implements Store using MySQL.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// FindWordbook returns a wordbook by id, or nil if not found.
func (s *DBStore) FindWordbook(ctx context.Context, id int64) (*Wordbook, error) {
	var wordbook Wordbook
	err := s.db.GetContext(ctx, &wordbook, "SELECT * FROM wordbooks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(wordbook) > %w", err)
	}
	return &wordbook, nil
}

// FindWords returns the flattened word list of a wordbook ordered by position.
func (s *DBStore) FindWords(ctx context.Context, wordbookID int64) ([]Word, error) {
	var words []Word
	if err := s.db.SelectContext(ctx, &words,
		"SELECT * FROM words WHERE wordbook_id = ? ORDER BY position", wordbookID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	return words, nil
}

// FindListeningTest returns a listening test by id, or nil if not found.
func (s *DBStore) FindListeningTest(ctx context.Context, id int64) (*ListeningTest, error) {
	var test ListeningTest
	err := s.db.GetContext(ctx, &test, "SELECT * FROM listening_tests WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(listening_test) > %w", err)
	}
	return &test, nil
}

// FindListeningSections returns the sections of a test ordered by position.
func (s *DBStore) FindListeningSections(ctx context.Context, testID int64) ([]ListeningSection, error) {
	var sections []ListeningSection
	if err := s.db.SelectContext(ctx, &sections,
		"SELECT * FROM listening_sections WHERE test_id = ? ORDER BY position", testID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(listening_sections) > %w", err)
	}
	return sections, nil
}

// CreateWordbook inserts a new wordbook and sets its id.
func (s *DBStore) CreateWordbook(ctx context.Context, wordbook *Wordbook) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO wordbooks (name, level) VALUES (?, ?)",
		wordbook.Name, wordbook.Level)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert wordbook) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	wordbook.ID = id
	return nil
}

// BatchCreateWords inserts words with a single multi-row statement.
func (s *DBStore) BatchCreateWords(ctx context.Context, words []Word) error {
	if len(words) == 0 {
		return nil
	}
	query, args := batchInsertWords(words)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db.ExecContext(insert words) > %w", err)
	}
	return nil
}

// ImportWordbook inserts a wordbook and its words in one transaction, so a
// failed import never leaves an empty wordbook behind. The wordbook id and
// the words' wordbook ids are filled in on success.
func (s *DBStore) ImportWordbook(ctx context.Context, wordbook *Wordbook, words []Word) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			"INSERT INTO wordbooks (name, level) VALUES (?, ?)",
			wordbook.Name, wordbook.Level)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(insert wordbook) > %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("result.LastInsertId() > %w", err)
		}
		wordbook.ID = id

		if len(words) == 0 {
			return nil
		}
		for i := range words {
			words[i].WordbookID = id
		}
		query, args := batchInsertWords(words)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("tx.ExecContext(insert words) > %w", err)
		}
		return nil
	})
}

func batchInsertWords(words []Word) (string, []interface{}) {
	query := "INSERT INTO words (wordbook_id, position, section, term, meaning, example) VALUES "
	args := make([]interface{}, 0, len(words)*6)
	for i, word := range words {
		if i > 0 {
			query += ", "
		}
		query += "(?, ?, ?, ?, ?, ?)"
		args = append(args, word.WordbookID, word.Position, word.Section, word.Term, word.Meaning, word.Example)
	}
	return query, args
}
