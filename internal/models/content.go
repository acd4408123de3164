package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// ContentDocument is the root aggregate for one piece of topic content.
// Lessons are persisted wholesale as a JSONB column; the document is always
// saved as a unit rather than diffed.
type ContentDocument struct {
	ID          string         `db:"id" json:"id"`
	TopicID     string         `db:"topic_id" json:"topic_id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	FileType    string         `db:"file_type" json:"file_type"`
	FilePaths   pq.StringArray `db:"file_paths" json:"file_paths"`
	Lessons     LessonList     `db:"lessons" json:"lessons"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// Lesson is one sequential learning unit inside a content document.
type Lesson struct {
	Title       string       `json:"title"`
	AudioURL    string       `json:"audio_url,omitempty"`
	VideoURL    string       `json:"video_url,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	SubHeadings []SubHeading `json:"sub_headings"`
	Comments    []Comment    `json:"comments"`
	Reactions   []Reaction   `json:"reactions"`
}

// SubHeading is one content block within a lesson. TimingArray holds one
// playback start offset (seconds) per display line derived from Text; the
// length invariant is restored on load and on explicit line detection, not
// enforced continuously.
type SubHeading struct {
	Text           string        `json:"text"`
	Question       string        `json:"question,omitempty"`
	ExpectedAnswer string        `json:"expected_answer,omitempty"`
	Hint           string        `json:"hint,omitempty"`
	Comment        string        `json:"comment,omitempty"`
	AttachmentURL  string        `json:"attachment_url,omitempty"`
	MCQQuestions   []MCQQuestion `json:"mcq_questions"`
	TimingArray    []float64     `json:"timing_array"`
}

// MCQQuestion is a multiple-choice question attached to a sub-heading.
// CorrectAnswer must equal one of Options or be empty.
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Comment is an author-attributed note on a lesson, with one level of replies.
type Comment struct {
	UserID    string    `json:"user_id"`
	UserType  string    `json:"user_type"`
	Text      string    `json:"text"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply nests one level under a comment.
type Reply struct {
	UserID    string    `json:"user_id"`
	UserType  string    `json:"user_type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Reaction is a flat emoji reaction on a lesson.
type Reaction struct {
	UserID    string    `json:"user_id"`
	UserType  string    `json:"user_type"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// LessonList stores the lesson tree as JSONB.
type LessonList []Lesson

// Value implements driver.Valuer for JSONB persistence.
func (l LessonList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Lesson{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (l *LessonList) Scan(src interface{}) error {
	if src == nil {
		*l = LessonList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported lessons column type %T", src)
	}
	if len(raw) == 0 {
		*l = LessonList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// ContentFilter captures listing criteria for content documents.
type ContentFilter struct {
	TopicID  string
	Search   string
	Page     int
	PageSize int
}
