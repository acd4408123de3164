package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/lms-content-api/internal/models"
)

func TestRemoveMCQOptionClearsCorrectAnswer(t *testing.T) {
	q := models.MCQQuestion{
		Question:      "Pick one",
		Options:       []string{"A", "B"},
		CorrectAnswer: "A",
	}

	RemoveMCQOption(&q, 0)

	assert.Equal(t, []string{"B"}, q.Options)
	assert.Empty(t, q.CorrectAnswer)
}

func TestRemoveMCQOptionKeepsDuplicateAnswer(t *testing.T) {
	q := models.MCQQuestion{
		Options:       []string{"A", "A", "B"},
		CorrectAnswer: "A",
	}

	RemoveMCQOption(&q, 0)

	assert.Equal(t, []string{"A", "B"}, q.Options)
	assert.Equal(t, "A", q.CorrectAnswer)
}

func TestRemoveMCQOptionRefusesLastOption(t *testing.T) {
	q := models.MCQQuestion{Options: []string{"only"}, CorrectAnswer: "only"}

	RemoveMCQOption(&q, 0)

	assert.Equal(t, []string{"only"}, q.Options)
	assert.Equal(t, "only", q.CorrectAnswer)
}

func TestSetMCQOption(t *testing.T) {
	q := models.MCQQuestion{
		Options:       []string{"A", "B"},
		CorrectAnswer: "A",
	}

	SetMCQOption(&q, 0, "C")
	assert.Equal(t, []string{"C", "B"}, q.Options)
	assert.Equal(t, "C", q.CorrectAnswer)

	SetMCQOption(&q, 0, "")
	assert.Equal(t, []string{"", "B"}, q.Options)
	assert.Empty(t, q.CorrectAnswer)
}

func TestNormalizeMCQClearsStaleAnswer(t *testing.T) {
	q := models.MCQQuestion{
		Options:       []string{"A", "B"},
		CorrectAnswer: "Z",
	}

	NormalizeMCQ(&q)

	assert.Empty(t, q.CorrectAnswer)
}
