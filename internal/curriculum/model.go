// Package curriculum provides curriculum, item and enrollment domain models
// and repository interfaces.
package curriculum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/wordplan/internal/schedule"
)

// Curriculum is a named ordered sequence of learning items.
type Curriculum struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Level     string    `db:"level"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Item is one unit of a curriculum: a wordbook or listening test together
// with its pacing rule. Sequence defines traversal order; ContentID points
// at the wordbook or listening test behind the item.
type Item struct {
	ID                 int64     `db:"id"`
	CurriculumID       int64     `db:"curriculum_id"`
	Sequence           int       `db:"sequence"`
	ItemType           string    `db:"item_type"`
	ContentID          int64     `db:"content_id"`
	DailyAmountType    string    `db:"daily_amount_type"`
	DailySectionAmount float64   `db:"daily_section_amount"`
	SectionStart       int       `db:"section_start"`
	DailyWordCount     int       `db:"daily_word_count"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// StudyDayTokens is a JSON-encoded list of weekday tokens in a TEXT column.
type StudyDayTokens []string

// Value implements the driver.Valuer interface.
func (s StudyDayTokens) Value() (driver.Value, error) {
	return jsonValue(s)
}

// Scan implements the sql.Scanner interface.
func (s *StudyDayTokens) Scan(src interface{}) error {
	return jsonScan(src, s)
}

// BreakList is a JSON-encoded list of break intervals in a TEXT column.
type BreakList []schedule.Break

// Value implements the driver.Valuer interface.
func (b BreakList) Value() (driver.Value, error) {
	return jsonValue(b)
}

// Scan implements the sql.Scanner interface.
func (b *BreakList) Scan(src interface{}) error {
	return jsonScan(src, b)
}

// OverrideSettings is a JSON-encoded schedule.Overrides in a TEXT column.
type OverrideSettings struct {
	schedule.Overrides
	Valid bool
}

// Value implements the driver.Valuer interface.
func (o OverrideSettings) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	return jsonValue(o.Overrides)
}

// Scan implements the sql.Scanner interface.
func (o *OverrideSettings) Scan(src interface{}) error {
	if src == nil {
		*o = OverrideSettings{}
		return nil
	}
	if err := jsonScan(src, &o.Overrides); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Enrollment is a student_curriculums row: one student's enrollment into a
// curriculum with their weekly pattern, breaks and overrides.
type Enrollment struct {
	ID              int64            `db:"id"`
	StudentID       int64            `db:"student_id"`
	CurriculumID    int64            `db:"curriculum_id"`
	StartDate       schedule.Date    `db:"start_date"`
	StudyDays       StudyDayTokens   `db:"study_days"`
	Breaks          BreakList        `db:"breaks"`
	Overrides       OverrideSettings `db:"setting_overrides"`
	CurrentItemID   int64            `db:"current_item_id"`
	CurrentProgress int              `db:"current_progress"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

// ToSchedule converts the row into the resolver's enrollment input,
// validating the stored study-day tokens.
func (e Enrollment) ToSchedule() (schedule.Enrollment, error) {
	days, err := schedule.ParseStudyDays(e.StudyDays)
	if err != nil {
		return schedule.Enrollment{}, fmt.Errorf("enrollment %d: %w", e.ID, err)
	}

	enrollment := schedule.Enrollment{
		StudentID:       e.StudentID,
		CurriculumID:    e.CurriculumID,
		StartDate:       e.StartDate,
		StudyDays:       days,
		Breaks:          e.Breaks,
		CurrentItemID:   e.CurrentItemID,
		CurrentProgress: e.CurrentProgress,
	}
	if e.Overrides.Valid {
		overrides := e.Overrides.Overrides
		enrollment.Overrides = &overrides
	}
	return enrollment, nil
}

func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal > %w", err)
	}
	return string(data), nil
}

func jsonScan(src, dst interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	}
	return fmt.Errorf("unable to scan %T as JSON", src)
}
