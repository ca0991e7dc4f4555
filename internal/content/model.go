// Package content provides wordbook and listening-test content models and
// their storage.
package content

import "time"

// Wordbook is an ordered collection of words, grouped into sections.
type Wordbook struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Level     string    `db:"level"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Word is one atomic learning unit of a wordbook. Position is the 1-based
// index into the wordbook's flattened word list; schedule windows refer to
// it directly.
type Word struct {
	ID         int64     `db:"id"`
	WordbookID int64     `db:"wordbook_id"`
	Position   int       `db:"position"`
	Section    int       `db:"section"`
	Term       string    `db:"term"`
	Meaning    string    `db:"meaning"`
	Example    string    `db:"example"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ListeningTest is an ordered sequence of listening sections.
type ListeningTest struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Level     string    `db:"level"`
	AudioURL  string    `db:"audio_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ListeningSection is one section of a listening test. UnitCount is the
// number of questions the section contains; the resolver paces by it.
type ListeningSection struct {
	ID        int64     `db:"id"`
	TestID    int64     `db:"test_id"`
	Position  int       `db:"position"`
	Title     string    `db:"title"`
	UnitCount int       `db:"unit_count"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SectionWordCounts groups an ordered word list into per-section counts.
// Words are expected to be ordered by position with ascending section
// numbers. The first word always opens a section, whatever its number.
func SectionWordCounts(words []Word) []int {
	var counts []int
	currentSection := -1
	for _, word := range words {
		if word.Section != currentSection {
			currentSection = word.Section
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}
	return counts
}
