package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-content-api/internal/models"
)

// LibraryRepository provides persistence for uploaded file metadata.
type LibraryRepository struct {
	db *sqlx.DB
}

// NewLibraryRepository creates the repository.
func NewLibraryRepository(db *sqlx.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

const libraryColumns = "id, title, kind, file_name, object_name, public_url, mime_type, size_bytes, uploaded_by, created_at"

// Create inserts a new library item.
func (r *LibraryRepository) Create(ctx context.Context, item *models.LibraryItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO library_items (id, title, kind, file_name, object_name, public_url, mime_type, size_bytes, uploaded_by, created_at)
VALUES (:id, :title, :kind, :file_name, :object_name, :public_url, :mime_type, :size_bytes, :uploaded_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create library item: %w", err)
	}
	return nil
}

// GetByID returns a library item by identifier.
func (r *LibraryRepository) GetByID(ctx context.Context, id string) (*models.LibraryItem, error) {
	query := fmt.Sprintf("SELECT %s FROM library_items WHERE id = $1", libraryColumns)
	var item models.LibraryItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns library items matching the filter plus a total count.
func (r *LibraryRepository) List(ctx context.Context, filter models.LibraryFilter) ([]models.LibraryItem, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Kind != "" {
		where = append(where, fmt.Sprintf("kind = $%d", len(args)+1))
		args = append(args, filter.Kind)
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR file_name ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT %s FROM library_items WHERE %s
ORDER BY created_at DESC
LIMIT %d OFFSET %d`, libraryColumns, whereClause, size, offset)
	var items []models.LibraryItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list library items: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM library_items WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count library items: %w", err)
	}
	return items, total, nil
}

// Delete removes a library item.
func (r *LibraryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM library_items WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete library item: %w", err)
	}
	return nil
}
