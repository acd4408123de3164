package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-content-api/internal/models"
)

func exportTestDocument() *models.ContentDocument {
	return &models.ContentDocument{
		ID:          "content-1",
		TopicID:     "topic-1",
		Title:       "Algebra Basics",
		Description: "Intro",
		Lessons: models.LessonList{
			{
				Title: "Lesson A",
				SubHeadings: []models.SubHeading{
					{Text: "first line\nsecond line", TimingArray: []float64{0, 3.25}},
				},
			},
		},
	}
}

func TestExportServiceCSV(t *testing.T) {
	repo := newMockContentRepo(exportTestDocument())
	content := NewContentService(repo, nil, nil)
	svc := NewExportService(content, nil)

	file, err := svc.Export(context.Background(), "content-1", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "algebra-basics.csv", file.FileName)
	assert.Equal(t, "text/csv", file.ContentType)

	body := string(file.Data)
	// Spreadsheet apps need the BOM to decode math symbols correctly.
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Lesson")
	assert.Contains(t, lines[1], "first line")
	assert.Contains(t, lines[1], "0.00")
	assert.Contains(t, lines[2], "second line")
	assert.Contains(t, lines[2], "3.25")
}

func TestExportServicePDF(t *testing.T) {
	repo := newMockContentRepo(exportTestDocument())
	content := NewContentService(repo, nil, nil)
	svc := NewExportService(content, nil)

	file, err := svc.Export(context.Background(), "content-1", ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "algebra-basics.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	repo := newMockContentRepo(exportTestDocument())
	content := NewContentService(repo, nil, nil)
	svc := NewExportService(content, nil)

	_, err := svc.Export(context.Background(), "content-1", ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestExportServiceUnknownContent(t *testing.T) {
	repo := newMockContentRepo()
	content := NewContentService(repo, nil, nil)
	svc := NewExportService(content, nil)

	_, err := svc.Export(context.Background(), "missing", ExportFormatCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content not found")
}
