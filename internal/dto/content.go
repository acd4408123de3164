package dto

import "github.com/noah-isme/lms-content-api/internal/models"

// SubHeadingPayload mirrors models.SubHeading plus the ephemeral drag key the
// editor attaches for list reordering. The key never reaches the domain
// model; it is dropped during conversion.
type SubHeadingPayload struct {
	DragKey        string               `json:"dragKey,omitempty"`
	Text           string               `json:"text"`
	Question       string               `json:"question,omitempty"`
	ExpectedAnswer string               `json:"expectedAnswer,omitempty"`
	Hint           string               `json:"hint,omitempty"`
	Comment        string               `json:"comment,omitempty"`
	AttachmentURL  string               `json:"attachmentUrl,omitempty"`
	MCQQuestions   []models.MCQQuestion `json:"mcqQuestions"`
	TimingArray    []float64            `json:"timingArray"`
}

// LessonPayload mirrors models.Lesson for create/update requests.
type LessonPayload struct {
	Title       string              `json:"title"`
	AudioURL    string              `json:"audioUrl,omitempty"`
	VideoURL    string              `json:"videoUrl,omitempty"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	SubHeadings []SubHeadingPayload `json:"subHeadings"`
}

// CreateContentRequest creates a new content document under a topic.
type CreateContentRequest struct {
	TopicID     string          `json:"topicId" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	FileType    string          `json:"fileType"`
	FilePaths   []string        `json:"filePaths"`
	Lessons     []LessonPayload `json:"lessons"`
}

// UpdateContentRequest replaces a content document wholesale.
type UpdateContentRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	FileType    string          `json:"fileType"`
	FilePaths   []string        `json:"filePaths"`
	Lessons     []LessonPayload `json:"lessons" validate:"required,min=1"`
}

// ReorderRequest moves a lesson (or a sub-heading within one lesson) from one
// position to another. ActiveIndex, when provided, is the editor's currently
// selected lesson index and is remapped in the response.
type ReorderRequest struct {
	From        int  `json:"from"`
	To          int  `json:"to"`
	ActiveIndex *int `json:"activeIndex,omitempty"`
}

// ReorderResponse returns the persisted document plus the remapped selection.
type ReorderResponse struct {
	Content     *models.ContentDocument `json:"content"`
	ActiveIndex *int                    `json:"activeIndex,omitempty"`
}

// DetectLinesResponse reports the recomputed lines and timing array for one
// sub-heading after an explicit detect-lines action.
type DetectLinesResponse struct {
	Lines       []string  `json:"lines"`
	TimingArray []float64 `json:"timingArray"`
}

// ToLessons converts request payloads into domain lessons, discarding
// client-only drag keys.
func ToLessons(payloads []LessonPayload) []models.Lesson {
	lessons := make([]models.Lesson, 0, len(payloads))
	for _, p := range payloads {
		lesson := models.Lesson{
			Title:       p.Title,
			AudioURL:    p.AudioURL,
			VideoURL:    p.VideoURL,
			ImageURL:    p.ImageURL,
			SubHeadings: make([]models.SubHeading, 0, len(p.SubHeadings)),
		}
		for _, sp := range p.SubHeadings {
			lesson.SubHeadings = append(lesson.SubHeadings, models.SubHeading{
				Text:           sp.Text,
				Question:       sp.Question,
				ExpectedAnswer: sp.ExpectedAnswer,
				Hint:           sp.Hint,
				Comment:        sp.Comment,
				AttachmentURL:  sp.AttachmentURL,
				MCQQuestions:   sp.MCQQuestions,
				TimingArray:    sp.TimingArray,
			})
		}
		lessons = append(lessons, lesson)
	}
	return lessons
}
