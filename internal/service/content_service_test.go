package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/models"
)

type mockContentRepo struct {
	docs map[string]*models.ContentDocument

	getCalls    int
	updateCalls int
	createCalls int
}

func newMockContentRepo(docs ...*models.ContentDocument) *mockContentRepo {
	repo := &mockContentRepo{docs: make(map[string]*models.ContentDocument)}
	for _, doc := range docs {
		repo.docs[doc.ID] = doc
	}
	return repo
}

func (m *mockContentRepo) GetByID(ctx context.Context, id string) (*models.ContentDocument, error) {
	m.getCalls++
	doc, ok := m.docs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *doc
	return &copied, nil
}

func (m *mockContentRepo) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentDocument, int, error) {
	var result []models.ContentDocument
	for _, doc := range m.docs {
		if filter.TopicID != "" && filter.TopicID != doc.TopicID {
			continue
		}
		result = append(result, *doc)
	}
	return result, len(result), nil
}

func (m *mockContentRepo) Create(ctx context.Context, doc *models.ContentDocument) error {
	m.createCalls++
	if doc.ID == "" {
		doc.ID = "generated-id"
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockContentRepo) Update(ctx context.Context, doc *models.ContentDocument) error {
	m.updateCalls++
	if _, ok := m.docs[doc.ID]; !ok {
		return sql.ErrNoRows
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockContentRepo) Delete(ctx context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func seedDocument() *models.ContentDocument {
	return &models.ContentDocument{
		ID:          "content-1",
		TopicID:     "topic-1",
		Title:       "Algebra",
		Description: "Intro",
		Lessons: models.LessonList{
			{
				Title: "Lesson A",
				SubHeadings: []models.SubHeading{
					{Text: "line one\nline two\nline three", TimingArray: []float64{2.5}},
				},
			},
			{Title: "Lesson B"},
			{Title: "Lesson C"},
			{Title: "Lesson D"},
		},
	}
}

func TestContentServiceGetReconcilesTimings(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	doc, err := svc.Get(context.Background(), "content-1")
	require.NoError(t, err)

	// Three detected lines, one stored timing: padded with the last value.
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, doc.Lessons[0].SubHeadings[0].TimingArray)
}

func TestContentServiceGetNotFound(t *testing.T) {
	repo := newMockContentRepo()
	svc := NewContentService(repo, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content not found")
}

func TestContentServiceUpdateInvalidPayloadSkipsRepository(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	_, err := svc.Update(context.Background(), "content-1", dto.UpdateContentRequest{
		Title:       "",
		Description: "desc",
		Lessons:     []dto.LessonPayload{{Title: "Lesson A"}},
	})
	require.Error(t, err)
	assert.Zero(t, repo.getCalls)
	assert.Zero(t, repo.updateCalls)
}

func TestContentServiceUpdateRequiresLessonTitles(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	_, err := svc.Update(context.Background(), "content-1", dto.UpdateContentRequest{
		Title:       "Algebra",
		Description: "Intro",
		Lessons:     []dto.LessonPayload{{Title: "  "}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson 1 requires a title")
	assert.Zero(t, repo.updateCalls)
}

func TestContentServiceUpdatePersistsOnce(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	doc, err := svc.Update(context.Background(), "content-1", dto.UpdateContentRequest{
		Title:       "Algebra II",
		Description: "Extended",
		Lessons: []dto.LessonPayload{
			{Title: "Lesson A", SubHeadings: []dto.SubHeadingPayload{
				{DragKey: "drag-1", Text: "one\ntwo", TimingArray: []float64{1.0}},
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, "Algebra II", doc.Title)
	// Drag keys are client-side only and timing arrays are reconciled on save.
	assert.Equal(t, []float64{1.0, 1.0}, doc.Lessons[0].SubHeadings[0].TimingArray)
}

func TestContentServiceCreate(t *testing.T) {
	repo := newMockContentRepo()
	svc := NewContentService(repo, nil, nil)

	doc, err := svc.Create(context.Background(), dto.CreateContentRequest{
		TopicID:     "topic-9",
		Title:       "  Geometry ",
		Description: "Shapes",
		Lessons:     []dto.LessonPayload{{Title: "Angles"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "Geometry", doc.Title)
	assert.Equal(t, "topic-9", doc.TopicID)
}

func TestContentServiceDetectLinesPersistsTimings(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	resp, err := svc.DetectLines(context.Background(), "content-1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line two", "line three"}, resp.Lines)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, resp.TimingArray)
	assert.Equal(t, 1, repo.updateCalls)

	stored := repo.docs["content-1"]
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, stored.Lessons[0].SubHeadings[0].TimingArray)
}

func TestContentServiceDetectLinesUnknownIndexes(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	_, err := svc.DetectLines(context.Background(), "content-1", 7, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson not found")

	// Lesson B only has the single sub-heading normalization gives it.
	_, err = svc.DetectLines(context.Background(), "content-1", 1, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub-heading not found")
}

func TestContentServiceReorderLessons(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	active := 0
	resp, err := svc.ReorderLessons(context.Background(), "content-1", dto.ReorderRequest{From: 0, To: 2, ActiveIndex: &active})
	require.NoError(t, err)

	titles := make([]string, 0, len(resp.Content.Lessons))
	for _, lesson := range resp.Content.Lessons {
		titles = append(titles, lesson.Title)
	}
	assert.Equal(t, []string{"Lesson B", "Lesson C", "Lesson A", "Lesson D"}, titles)
	require.NotNil(t, resp.ActiveIndex)
	// The moved lesson was the selected one; selection follows it.
	assert.Equal(t, 2, *resp.ActiveIndex)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestContentServiceReorderLessonsOutOfRange(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	_, err := svc.ReorderLessons(context.Background(), "content-1", dto.ReorderRequest{From: 0, To: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Zero(t, repo.updateCalls)
}

func TestContentServiceReorderSubHeadings(t *testing.T) {
	doc := seedDocument()
	doc.Lessons[0].SubHeadings = []models.SubHeading{
		{Text: "first"},
		{Text: "second"},
		{Text: "third"},
	}
	repo := newMockContentRepo(doc)
	svc := NewContentService(repo, nil, nil)

	updated, err := svc.ReorderSubHeadings(context.Background(), "content-1", 0, dto.ReorderRequest{From: 2, To: 0})
	require.NoError(t, err)
	assert.Equal(t, "third", updated.Lessons[0].SubHeadings[0].Text)
	assert.Equal(t, "first", updated.Lessons[0].SubHeadings[1].Text)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestContentServiceDelete(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewContentService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "content-1"))
	_, err := svc.Get(context.Background(), "content-1")
	require.Error(t, err)
}
