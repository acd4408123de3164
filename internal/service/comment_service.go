package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/editor"
	"github.com/noah-isme/lms-content-api/internal/models"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
)

// CommentService manages the index-addressed comment and reaction
// sub-resources of a lesson. Every mutation rewrites the owning document and
// returns the refreshed list so callers always see the authoritative order.
type CommentService struct {
	repo      contentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCommentService constructs the service.
func NewCommentService(repo contentRepository, validate *validator.Validate, logger *zap.Logger) *CommentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{repo: repo, validator: validate, logger: logger}
}

// ListComments returns the comments of one lesson.
func (s *CommentService) ListComments(ctx context.Context, contentID string, lessonIndex int) ([]models.Comment, error) {
	_, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	return lesson.Comments, nil
}

// AddComment appends a comment to a lesson and returns the refreshed list.
func (s *CommentService) AddComment(ctx context.Context, contentID string, lessonIndex int, req dto.AddCommentRequest) ([]models.Comment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comment payload")
	}

	doc, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	lesson.Comments = append(lesson.Comments, models.Comment{
		UserID:    req.UserID,
		UserType:  req.UserType,
		Text:      req.Text,
		Replies:   []models.Reply{},
		CreatedAt: time.Now().UTC(),
	})

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save comment")
	}
	return lesson.Comments, nil
}

// DeleteComment removes the comment at the given index.
func (s *CommentService) DeleteComment(ctx context.Context, contentID string, lessonIndex, commentIndex int) ([]models.Comment, error) {
	doc, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	if commentIndex < 0 || commentIndex >= len(lesson.Comments) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "comment not found")
	}
	lesson.Comments = append(lesson.Comments[:commentIndex], lesson.Comments[commentIndex+1:]...)

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete comment")
	}
	return lesson.Comments, nil
}

// AddReply nests a reply under an existing comment.
func (s *CommentService) AddReply(ctx context.Context, contentID string, lessonIndex, commentIndex int, req dto.AddReplyRequest) ([]models.Comment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reply payload")
	}

	doc, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	if commentIndex < 0 || commentIndex >= len(lesson.Comments) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "comment not found")
	}
	comment := &lesson.Comments[commentIndex]
	comment.Replies = append(comment.Replies, models.Reply{
		UserID:    req.UserID,
		UserType:  req.UserType,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save reply")
	}
	return lesson.Comments, nil
}

// ListReactions returns the reactions of one lesson.
func (s *CommentService) ListReactions(ctx context.Context, contentID string, lessonIndex int) ([]models.Reaction, error) {
	_, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	return lesson.Reactions, nil
}

// AddReaction appends a reaction to a lesson and returns the refreshed list.
func (s *CommentService) AddReaction(ctx context.Context, contentID string, lessonIndex int, req dto.AddReactionRequest) ([]models.Reaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reaction payload")
	}

	doc, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	lesson.Reactions = append(lesson.Reactions, models.Reaction{
		UserID:    req.UserID,
		UserType:  req.UserType,
		Emoji:     req.Emoji,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save reaction")
	}
	return lesson.Reactions, nil
}

// DeleteReaction removes the reaction at the given index.
func (s *CommentService) DeleteReaction(ctx context.Context, contentID string, lessonIndex, reactionIndex int) ([]models.Reaction, error) {
	doc, lesson, err := s.lesson(ctx, contentID, lessonIndex)
	if err != nil {
		return nil, err
	}
	if reactionIndex < 0 || reactionIndex >= len(lesson.Reactions) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "reaction not found")
	}
	lesson.Reactions = append(lesson.Reactions[:reactionIndex], lesson.Reactions[reactionIndex+1:]...)

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete reaction")
	}
	return lesson.Reactions, nil
}

func (s *CommentService) lesson(ctx context.Context, contentID string, lessonIndex int) (*models.ContentDocument, *models.Lesson, error) {
	doc, err := s.repo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "content not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load content")
	}
	editor.NormalizeDocument(doc)
	if lessonIndex < 0 || lessonIndex >= len(doc.Lessons) {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	return doc, &doc.Lessons[lessonIndex], nil
}
