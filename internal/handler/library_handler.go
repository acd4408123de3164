package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-content-api/internal/models"
	"github.com/noah-isme/lms-content-api/internal/service"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
	"github.com/noah-isme/lms-content-api/pkg/response"
)

// LibraryHandler exposes the media library endpoints.
type LibraryHandler struct {
	library      *service.LibraryService
	downloadPath string
}

// NewLibraryHandler constructs the handler. downloadPath is the full route the
// signed download tokens are redeemed at.
func NewLibraryHandler(library *service.LibraryService, downloadPath string) *LibraryHandler {
	return &LibraryHandler{library: library, downloadPath: downloadPath}
}

// List godoc
// @Summary List library items
// @Tags Library
// @Produce json
// @Param kind query string false "Filter by kind (audio, video, image, document)"
// @Param search query string false "Search in title and file name"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /library [get]
func (h *LibraryHandler) List(c *gin.Context) {
	var filter models.LibraryFilter
	filter.Kind = models.UploadKind(c.Query("kind"))
	filter.Search = strings.TrimSpace(c.Query("search"))
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	items, pagination, err := h.library.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// Delete godoc
// @Summary Delete a library item and its stored file
// @Tags Library
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /library/{id} [delete]
func (h *LibraryHandler) Delete(c *gin.Context) {
	if err := h.library.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DownloadURL godoc
// @Summary Issue a signed, short-lived download URL
// @Tags Library
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /library/{id}/download-url [get]
func (h *LibraryHandler) DownloadURL(c *gin.Context) {
	res, err := h.library.DownloadURL(c.Request.Context(), c.Param("id"), h.downloadPath)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// Download godoc
// @Summary Redeem a signed download token
// @Tags Library
// @Produce octet-stream
// @Param token query string true "Signed token"
// @Success 200 {file} binary
// @Failure 401 {object} response.Envelope
// @Router /library/download [get]
func (h *LibraryHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	download, err := h.library.Download(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.Content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+download.Item.FileName+`"`)
	c.DataFromReader(http.StatusOK, download.Item.SizeBytes, download.Item.MimeType, download.Content, nil)
}
