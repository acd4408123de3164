package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/models"
	"github.com/noah-isme/lms-content-api/internal/service"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
	"github.com/noah-isme/lms-content-api/pkg/response"
)

// ContentHandler exposes content document endpoints.
type ContentHandler struct {
	contents *service.ContentService
	exports  *service.ExportService
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(contents *service.ContentService, exports *service.ExportService) *ContentHandler {
	return &ContentHandler{contents: contents, exports: exports}
}

// List godoc
// @Summary List content documents
// @Tags Content
// @Produce json
// @Param topicId query string false "Filter by topic"
// @Param search query string false "Search in title and description"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /content [get]
func (h *ContentHandler) List(c *gin.Context) {
	var filter models.ContentFilter
	filter.TopicID = c.Query("topicId")
	filter.Search = strings.TrimSpace(c.Query("search"))
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	docs, pagination, err := h.contents.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, docs, pagination)
}

// Get godoc
// @Summary Get content document
// @Tags Content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /content/{id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	doc, err := h.contents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Create godoc
// @Summary Create content document
// @Tags Content
// @Accept json
// @Produce json
// @Param payload body dto.CreateContentRequest true "Content payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /content [post]
func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	doc, err := h.contents.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Update godoc
// @Summary Replace content document
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param payload body dto.UpdateContentRequest true "Content payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /content/update/{id} [put]
func (h *ContentHandler) Update(c *gin.Context) {
	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	doc, err := h.contents.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Delete godoc
// @Summary Delete content document
// @Tags Content
// @Param id path string true "Content ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /content/{id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DetectLines godoc
// @Summary Re-detect display lines for a sub-heading
// @Description Recomputes lines from the stored text and realigns the timing array
// @Tags Content
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param subIndex path int true "Sub-heading index"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/subheading/{subIndex}/detect-lines [post]
func (h *ContentHandler) DetectLines(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	subIndex, err := indexParam(c, "subIndex")
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.contents.DetectLines(c.Request.Context(), c.Param("id"), lessonIndex, subIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// ReorderLessons godoc
// @Summary Move a lesson to a new position
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param payload body dto.ReorderRequest true "Move payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /content/{id}/reorder [post]
func (h *ContentHandler) ReorderLessons(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	res, err := h.contents.ReorderLessons(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// ReorderSubHeadings godoc
// @Summary Move a sub-heading within a lesson
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param index path int true "Lesson index"
// @Param payload body dto.ReorderRequest true "Move payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /content/{id}/lesson/{index}/reorder [post]
func (h *ContentHandler) ReorderSubHeadings(c *gin.Context) {
	lessonIndex, err := indexParam(c, "index")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	doc, err := h.contents.ReorderSubHeadings(c.Request.Context(), c.Param("id"), lessonIndex, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Export godoc
// @Summary Export a content document as CSV or PDF
// @Tags Content
// @Produce octet-stream
// @Param id path string true "Content ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /content/{id}/export [get]
func (h *ContentHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	file, err := h.exports.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
