package editor

import "github.com/noah-isme/lms-content-api/internal/models"

// NormalizeDocument restores the structural invariants of a loaded document:
// missing collections become empty, every document keeps at least one lesson
// and every lesson at least one sub-heading, MCQ correct answers are validated
// against their options, timing values are clamped, and each timing array is
// reconciled against the lines detected from its sub-heading text. Stored
// data that drifted from the invariants is repaired here rather than
// rejected.
func NormalizeDocument(doc *models.ContentDocument) {
	if doc == nil {
		return
	}
	if doc.FilePaths == nil {
		doc.FilePaths = []string{}
	}
	if len(doc.Lessons) == 0 {
		doc.Lessons = models.LessonList{EmptyLesson()}
	}
	for i := range doc.Lessons {
		NormalizeLesson(&doc.Lessons[i])
	}
}

// NormalizeLesson applies sub-heading defaults and timing reconciliation to a
// single lesson.
func NormalizeLesson(lesson *models.Lesson) {
	if lesson == nil {
		return
	}
	if len(lesson.SubHeadings) == 0 {
		lesson.SubHeadings = []models.SubHeading{EmptySubHeading()}
	}
	if lesson.Comments == nil {
		lesson.Comments = []models.Comment{}
	}
	if lesson.Reactions == nil {
		lesson.Reactions = []models.Reaction{}
	}
	for i := range lesson.SubHeadings {
		NormalizeSubHeading(&lesson.SubHeadings[i])
	}
}

// NormalizeSubHeading clamps timings and realigns the timing array with the
// detected line count.
func NormalizeSubHeading(sub *models.SubHeading) {
	if sub == nil {
		return
	}
	if sub.MCQQuestions == nil {
		sub.MCQQuestions = []models.MCQQuestion{}
	}
	for i := range sub.MCQQuestions {
		NormalizeMCQ(&sub.MCQQuestions[i])
	}
	for i, v := range sub.TimingArray {
		sub.TimingArray[i] = ClampTiming(v)
	}
	sub.TimingArray = ReconcileTimings(sub.TimingArray, len(DetectLines(sub.Text)))
}

// EmptyLesson returns a fresh lesson with a single blank sub-heading.
func EmptyLesson() models.Lesson {
	return models.Lesson{
		SubHeadings: []models.SubHeading{EmptySubHeading()},
		Comments:    []models.Comment{},
		Reactions:   []models.Reaction{},
	}
}

// EmptySubHeading returns a blank sub-heading with initialised collections.
func EmptySubHeading() models.SubHeading {
	return models.SubHeading{
		MCQQuestions: []models.MCQQuestion{},
		TimingArray:  []float64{},
	}
}
