package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/editor"
	"github.com/noah-isme/lms-content-api/internal/models"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
)

type contentRepository interface {
	GetByID(ctx context.Context, id string) (*models.ContentDocument, error)
	List(ctx context.Context, filter models.ContentFilter) ([]models.ContentDocument, int, error)
	Create(ctx context.Context, doc *models.ContentDocument) error
	Update(ctx context.Context, doc *models.ContentDocument) error
	Delete(ctx context.Context, id string) error
}

// ContentService owns the content document lifecycle: load-time invariant
// repair, whole-document saves, and the editing operations (line detection,
// timing reconciliation, reordering) the authoring screens rely on.
type ContentService struct {
	repo      contentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContentService constructs the service.
func NewContentService(repo contentRepository, validate *validator.Validate, logger *zap.Logger) *ContentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{repo: repo, validator: validate, logger: logger}
}

// Get loads a content document and restores its structural invariants.
// Stored documents may carry timing arrays that drifted from their text; the
// returned document is always reconciled.
func (s *ContentService) Get(ctx context.Context, id string) (*models.ContentDocument, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns documents matching the filter.
func (s *ContentService) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentDocument, *models.Pagination, error) {
	docs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list contents")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return docs, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Create persists a new content document for a topic.
func (s *ContentService) Create(ctx context.Context, req dto.CreateContentRequest) (*models.ContentDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid content payload")
	}
	if err := validateLessonTitles(req.Lessons); err != nil {
		return nil, err
	}

	doc := &models.ContentDocument{
		TopicID:     req.TopicID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		FileType:    req.FileType,
		FilePaths:   req.FilePaths,
		Lessons:     dto.ToLessons(req.Lessons),
	}
	editor.NormalizeDocument(doc)

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create content")
	}
	return doc, nil
}

// Update replaces a document wholesale. Validation runs before any repository
// access; an invalid submit performs zero persistence calls.
func (s *ContentService) Update(ctx context.Context, id string, req dto.UpdateContentRequest) (*models.ContentDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid content payload")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title and description are required")
	}
	if err := validateLessonTitles(req.Lessons); err != nil {
		return nil, err
	}

	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.Title = strings.TrimSpace(req.Title)
	doc.Description = strings.TrimSpace(req.Description)
	doc.FileType = req.FileType
	doc.FilePaths = req.FilePaths
	doc.Lessons = dto.ToLessons(req.Lessons)
	editor.NormalizeDocument(doc)

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update content")
	}
	return doc, nil
}

// Delete removes a content document.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete content")
	}
	return nil
}

// DetectLines recomputes display lines for one sub-heading and realigns its
// timing array, persisting the repaired document. Used when text was bulk
// pasted or edited outside the normal flow and the array drifted.
func (s *ContentService) DetectLines(ctx context.Context, id string, lessonIndex, subIndex int) (*dto.DetectLinesResponse, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	sub, err := subHeadingAt(doc, lessonIndex, subIndex)
	if err != nil {
		return nil, err
	}

	lines := editor.DetectLines(sub.Text)
	sub.TimingArray = editor.ReconcileTimings(sub.TimingArray, len(lines))

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist detected lines")
	}
	return &dto.DetectLinesResponse{Lines: lines, TimingArray: sub.TimingArray}, nil
}

// ReorderLessons moves a lesson to a new position and remaps the editor's
// active lesson index so the same logical lesson stays selected.
func (s *ContentService) ReorderLessons(ctx context.Context, id string, req dto.ReorderRequest) (*dto.ReorderResponse, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.From < 0 || req.From >= len(doc.Lessons) || req.To < 0 || req.To >= len(doc.Lessons) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reorder indexes out of range")
	}

	doc.Lessons = editor.Move(doc.Lessons, req.From, req.To)
	resp := &dto.ReorderResponse{Content: doc}
	if req.ActiveIndex != nil {
		remapped := editor.RemapActiveIndex(*req.ActiveIndex, req.From, req.To)
		resp.ActiveIndex = &remapped
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist lesson order")
	}
	return resp, nil
}

// ReorderSubHeadings moves a sub-heading within a single lesson. Sections
// never move across lessons.
func (s *ContentService) ReorderSubHeadings(ctx context.Context, id string, lessonIndex int, req dto.ReorderRequest) (*models.ContentDocument, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if lessonIndex < 0 || lessonIndex >= len(doc.Lessons) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	lesson := &doc.Lessons[lessonIndex]
	if req.From < 0 || req.From >= len(lesson.SubHeadings) || req.To < 0 || req.To >= len(lesson.SubHeadings) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reorder indexes out of range")
	}

	lesson.SubHeadings = editor.Move(lesson.SubHeadings, req.From, req.To)

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist section order")
	}
	return doc, nil
}

func (s *ContentService) load(ctx context.Context, id string) (*models.ContentDocument, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "content not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load content")
	}
	editor.NormalizeDocument(doc)
	return doc, nil
}

func validateLessonTitles(lessons []dto.LessonPayload) error {
	for i, lesson := range lessons {
		if strings.TrimSpace(lesson.Title) == "" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("lesson %d requires a title", i+1))
		}
	}
	return nil
}

func subHeadingAt(doc *models.ContentDocument, lessonIndex, subIndex int) (*models.SubHeading, error) {
	if lessonIndex < 0 || lessonIndex >= len(doc.Lessons) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	lesson := &doc.Lessons[lessonIndex]
	if subIndex < 0 || subIndex >= len(lesson.SubHeadings) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "sub-heading not found")
	}
	return &lesson.SubHeadings[subIndex], nil
}
