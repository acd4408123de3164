package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/service"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
	"github.com/noah-isme/lms-content-api/pkg/response"
)

// CommentHandler exposes lesson comment and reaction sub-resources.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler constructs CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListComments godoc
// @Summary List lesson comments
// @Tags Comments
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Success 200 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/comment [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	comments, err := h.comments.ListComments(c.Request.Context(), c.Param("id"), lessonIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments, nil)
}

// AddComment godoc
// @Summary Add a lesson comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param payload body dto.AddCommentRequest true "Comment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/comment [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	comments, err := h.comments.AddComment(c.Request.Context(), c.Param("id"), lessonIndex, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comments)
}

// DeleteComment godoc
// @Summary Delete a lesson comment
// @Tags Comments
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param commentIndex path int true "Comment index"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/comment/{commentIndex} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	commentIndex, err := indexParam(c, "commentIndex")
	if err != nil {
		response.Error(c, err)
		return
	}
	comments, err := h.comments.DeleteComment(c.Request.Context(), c.Param("id"), lessonIndex, commentIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments, nil)
}

// AddReply godoc
// @Summary Reply to a lesson comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param commentIndex path int true "Comment index"
// @Param payload body dto.AddReplyRequest true "Reply payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/comment/{commentIndex}/reply [post]
func (h *CommentHandler) AddReply(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	commentIndex, err := indexParam(c, "commentIndex")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	comments, err := h.comments.AddReply(c.Request.Context(), c.Param("id"), lessonIndex, commentIndex, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comments)
}

// ListReactions godoc
// @Summary List lesson reactions
// @Tags Reactions
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Success 200 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/reaction [get]
func (h *CommentHandler) ListReactions(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	reactions, err := h.comments.ListReactions(c.Request.Context(), c.Param("id"), lessonIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reactions, nil)
}

// AddReaction godoc
// @Summary Add a lesson reaction
// @Tags Reactions
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param payload body dto.AddReactionRequest true "Reaction payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/reaction [post]
func (h *CommentHandler) AddReaction(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AddReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	reactions, err := h.comments.AddReaction(c.Request.Context(), c.Param("id"), lessonIndex, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reactions)
}

// DeleteReaction godoc
// @Summary Delete a lesson reaction
// @Tags Reactions
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param reactionIndex path int true "Reaction index"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/reaction/{reactionIndex} [delete]
func (h *CommentHandler) DeleteReaction(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	reactionIndex, err := indexParam(c, "reactionIndex")
	if err != nil {
		response.Error(c, err)
		return
	}
	reactions, err := h.comments.DeleteReaction(c.Request.Context(), c.Param("id"), lessonIndex, reactionIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reactions, nil)
}
