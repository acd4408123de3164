package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-content-api/internal/middleware"
	"github.com/noah-isme/lms-content-api/internal/models"
	"github.com/noah-isme/lms-content-api/internal/service"
)

type libraryStoreMock struct {
	created []*models.LibraryItem
}

func (m *libraryStoreMock) Create(ctx context.Context, item *models.LibraryItem) error {
	item.ID = "item-1"
	m.created = append(m.created, item)
	return nil
}

type objectStorageMock struct {
	saved   []string
	deleted []string
}

func (m *objectStorageMock) SaveStream(objectName string, r io.Reader) (string, error) {
	m.saved = append(m.saved, objectName)
	return objectName, nil
}

func (m *objectStorageMock) Delete(objectName string) error {
	m.deleted = append(m.deleted, objectName)
	return nil
}

func (m *objectStorageMock) PublicURL(objectName string) string {
	return "http://localhost:8080/files/" + objectName
}

func multipartUploadContext(t *testing.T, kind, filename, contentType string, payload []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("kind", kind))
	require.NoError(t, writer.WriteField("title", "Test Upload"))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/uploads", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
	return c, w
}

func newUploadHandlerForTest(store *libraryStoreMock, objects *objectStorageMock) *UploadHandler {
	svc := service.NewUploadService(store, objects, nil, nil, nil, nil, service.UploadServiceConfig{})
	return NewUploadHandler(svc)
}

func TestUploadHandlerCreatesItem(t *testing.T) {
	store := &libraryStoreMock{}
	objects := &objectStorageMock{}
	handler := newUploadHandlerForTest(store, objects)

	c, w := multipartUploadContext(t, "audio", "song.mp3", "audio/mpeg", []byte("audio-bytes"))
	handler.Upload(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, models.UploadKindAudio, store.created[0].Kind)
	assert.Equal(t, "Test Upload", store.created[0].Title)
	require.Len(t, objects.saved, 1)
}

func TestUploadHandlerRejectsDisallowedType(t *testing.T) {
	store := &libraryStoreMock{}
	objects := &objectStorageMock{}
	handler := newUploadHandlerForTest(store, objects)

	c, w := multipartUploadContext(t, "audio", "malware.exe", "application/x-msdownload", []byte("nope"))
	handler.Upload(c)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Empty(t, objects.saved)
	assert.Empty(t, store.created)
}

func TestUploadHandlerRequiresFile(t *testing.T) {
	handler := newUploadHandlerForTest(&libraryStoreMock{}, &objectStorageMock{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/uploads", bytes.NewReader(nil))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})

	handler.Upload(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
