package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/models"
)

func TestCommentServiceAddComment(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewCommentService(repo, nil, nil)

	comments, err := svc.AddComment(context.Background(), "content-1", 0, dto.AddCommentRequest{
		UserID:   "user-1",
		UserType: "admin",
		Text:     "Needs a clearer hint",
	})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Needs a clearer hint", comments[0].Text)
	assert.NotNil(t, comments[0].Replies)
	assert.False(t, comments[0].CreatedAt.IsZero())
	assert.Equal(t, 1, repo.updateCalls)
}

func TestCommentServiceAddCommentInvalidPayload(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewCommentService(repo, nil, nil)

	_, err := svc.AddComment(context.Background(), "content-1", 0, dto.AddCommentRequest{UserID: "user-1"})
	require.Error(t, err)
	assert.Zero(t, repo.updateCalls)
}

func TestCommentServiceAddCommentUnknownLesson(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewCommentService(repo, nil, nil)

	_, err := svc.AddComment(context.Background(), "content-1", 42, dto.AddCommentRequest{
		UserID:   "user-1",
		UserType: "admin",
		Text:     "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson not found")
}

func TestCommentServiceDeleteComment(t *testing.T) {
	doc := seedDocument()
	doc.Lessons[0].Comments = []models.Comment{
		{UserID: "user-1", Text: "first"},
		{UserID: "user-2", Text: "second"},
	}
	repo := newMockContentRepo(doc)
	svc := NewCommentService(repo, nil, nil)

	comments, err := svc.DeleteComment(context.Background(), "content-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second", comments[0].Text)
}

func TestCommentServiceDeleteCommentOutOfRange(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewCommentService(repo, nil, nil)

	_, err := svc.DeleteComment(context.Background(), "content-1", 0, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment not found")
	assert.Zero(t, repo.updateCalls)
}

func TestCommentServiceAddReply(t *testing.T) {
	doc := seedDocument()
	doc.Lessons[0].Comments = []models.Comment{{UserID: "user-1", Text: "question"}}
	repo := newMockContentRepo(doc)
	svc := NewCommentService(repo, nil, nil)

	comments, err := svc.AddReply(context.Background(), "content-1", 0, 0, dto.AddReplyRequest{
		UserID:   "user-2",
		UserType: "editor",
		Text:     "answered",
	})
	require.NoError(t, err)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, "answered", comments[0].Replies[0].Text)
}

func TestCommentServiceReactions(t *testing.T) {
	repo := newMockContentRepo(seedDocument())
	svc := NewCommentService(repo, nil, nil)

	reactions, err := svc.AddReaction(context.Background(), "content-1", 0, dto.AddReactionRequest{
		UserID:   "user-1",
		UserType: "admin",
		Emoji:    "👍",
	})
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, "👍", reactions[0].Emoji)

	reactions, err = svc.DeleteReaction(context.Background(), "content-1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, reactions)
}
