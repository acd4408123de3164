package editor

import "github.com/noah-isme/lms-content-api/internal/models"

// SetMCQOption replaces the option at index with value. When the option being
// edited is the assigned correct answer and the new value is empty, the
// correct answer is cleared; otherwise the assignment follows the edit.
func SetMCQOption(q *models.MCQQuestion, index int, value string) {
	if q == nil || index < 0 || index >= len(q.Options) {
		return
	}
	previous := q.Options[index]
	q.Options[index] = value
	if q.CorrectAnswer == "" {
		return
	}
	if q.CorrectAnswer == previous {
		if value == "" {
			q.CorrectAnswer = ""
		} else {
			q.CorrectAnswer = value
		}
	}
}

// RemoveMCQOption deletes the option at index, clearing the correct answer if
// it pointed at the removed option. The last remaining option cannot be
// removed.
func RemoveMCQOption(q *models.MCQQuestion, index int) {
	if q == nil || index < 0 || index >= len(q.Options) || len(q.Options) <= 1 {
		return
	}
	removed := q.Options[index]
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
	if q.CorrectAnswer != "" && q.CorrectAnswer == removed && !containsOption(q.Options, removed) {
		q.CorrectAnswer = ""
	}
}

// NormalizeMCQ clears a correct answer that no longer matches any option.
func NormalizeMCQ(q *models.MCQQuestion) {
	if q == nil {
		return
	}
	if q.Options == nil {
		q.Options = []string{}
	}
	if q.CorrectAnswer != "" && !containsOption(q.Options, q.CorrectAnswer) {
		q.CorrectAnswer = ""
	}
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
