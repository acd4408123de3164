package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-content-api/internal/models"
)

func TestLibraryRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLibraryRepository(db)
	mock.ExpectExec("INSERT INTO library_items").
		WillReturnResult(sqlmock.NewResult(1, 1))

	item := &models.LibraryItem{
		Title:      "Syllabus",
		Kind:       models.UploadKindDocument,
		FileName:   "syllabus.pdf",
		ObjectName: "document/1700000000000-syllabus.pdf",
		PublicURL:  "http://localhost:8080/files/document/1700000000000-syllabus.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  1024,
		UploadedBy: "admin-1",
	}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
}

func TestLibraryRepositoryListFiltersByKind(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLibraryRepository(db)
	rows := sqlmock.NewRows([]string{"id", "title", "kind", "file_name", "object_name", "public_url", "mime_type", "size_bytes", "uploaded_by", "created_at"}).
		AddRow("item-1", "Syllabus", "document", "syllabus.pdf", "document/a.pdf", "http://x/a.pdf", "application/pdf", 1024, "admin-1", time.Now())
	mock.ExpectQuery("SELECT id, title, kind").
		WithArgs("document").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("document").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	items, total, err := repo.List(context.Background(), models.LibraryFilter{Kind: models.UploadKindDocument})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, models.UploadKindDocument, items[0].Kind)
}

func TestLibraryRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLibraryRepository(db)
	mock.ExpectExec("DELETE FROM library_items").
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "item-1"))
}
