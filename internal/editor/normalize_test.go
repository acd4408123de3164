package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-content-api/internal/models"
)

func TestNormalizeDocumentRepairsLoadedState(t *testing.T) {
	doc := &models.ContentDocument{
		Title: "Algebra basics",
		Lessons: models.LessonList{
			{
				Title: "Lesson 1",
				SubHeadings: []models.SubHeading{
					{
						Text: `\displaylines{\text{Line A}\\\text{Line B}}`,
						// stored without a timing array
					},
				},
			},
		},
	}

	NormalizeDocument(doc)

	require.Len(t, doc.Lessons, 1)
	sub := doc.Lessons[0].SubHeadings[0]
	assert.Equal(t, []float64{0, 0}, sub.TimingArray)
	assert.Equal(t, []string{"Line A", "Line B"}, DetectLines(sub.Text))
	assert.NotNil(t, doc.FilePaths)
	assert.NotNil(t, doc.Lessons[0].Comments)
	assert.NotNil(t, doc.Lessons[0].Reactions)
}

func TestNormalizeDocumentEnsuresMinimumStructure(t *testing.T) {
	doc := &models.ContentDocument{}

	NormalizeDocument(doc)

	require.Len(t, doc.Lessons, 1)
	require.Len(t, doc.Lessons[0].SubHeadings, 1)
	assert.Empty(t, doc.Lessons[0].SubHeadings[0].TimingArray)
}

func TestNormalizeSubHeadingClampsAndReconciles(t *testing.T) {
	sub := &models.SubHeading{
		Text:        "one\ntwo\nthree",
		TimingArray: []float64{-5, 2.5},
	}

	NormalizeSubHeading(sub)

	assert.Equal(t, []float64{0, 2.5, 2.5}, sub.TimingArray)
}

func TestNormalizeSubHeadingDropsTimingsWithText(t *testing.T) {
	sub := &models.SubHeading{
		Text:        "",
		TimingArray: []float64{1, 2, 3},
	}

	NormalizeSubHeading(sub)

	assert.Empty(t, sub.TimingArray)
}
