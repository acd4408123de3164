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

// ContentRepository provides persistence for content documents.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates the repository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = "id, topic_id, title, description, file_type, file_paths, lessons, created_at, updated_at"

// GetByID returns a content document by identifier.
func (r *ContentRepository) GetByID(ctx context.Context, id string) (*models.ContentDocument, error) {
	query := fmt.Sprintf("SELECT %s FROM contents WHERE id = $1", contentColumns)
	var doc models.ContentDocument
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns content documents matching the filter plus a total count.
func (r *ContentRepository) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentDocument, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.TopicID != "" {
		where = append(where, fmt.Sprintf("topic_id = $%d", len(args)+1))
		args = append(args, filter.TopicID)
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args)+1, len(args)+1))
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

	query := fmt.Sprintf(`SELECT %s FROM contents WHERE %s
ORDER BY updated_at DESC
LIMIT %d OFFSET %d`, contentColumns, whereClause, size, offset)
	var docs []models.ContentDocument
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list contents: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM contents WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count contents: %w", err)
	}
	return docs, total, nil
}

// Create inserts a new content document.
func (r *ContentRepository) Create(ctx context.Context, doc *models.ContentDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now
	query := `INSERT INTO contents (id, topic_id, title, description, file_type, file_paths, lessons, created_at, updated_at)
VALUES (:id, :topic_id, :title, :description, :file_type, :file_paths, :lessons, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("create content: %w", err)
	}
	return nil
}

// Update replaces an existing content document wholesale. The topic binding
// is immutable once loaded and is never rewritten here.
func (r *ContentRepository) Update(ctx context.Context, doc *models.ContentDocument) error {
	doc.UpdatedAt = time.Now().UTC()
	query := `UPDATE contents SET title = :title, description = :description, file_type = :file_type,
file_paths = :file_paths, lessons = :lessons, updated_at = :updated_at
WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, doc)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("update content %s: no rows affected", doc.ID)
	}
	return nil
}

// Delete removes a content document.
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM contents WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}
