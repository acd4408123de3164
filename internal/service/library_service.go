package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/models"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
)

const libraryCachePattern = "library:*"

type libraryRepository interface {
	GetByID(ctx context.Context, id string) (*models.LibraryItem, error)
	List(ctx context.Context, filter models.LibraryFilter) ([]models.LibraryItem, int, error)
	Delete(ctx context.Context, id string) error
}

type libraryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type mediaStorage interface {
	Open(objectName string) (io.ReadSeekCloser, error)
	Delete(objectName string) error
}

type downloadSigner interface {
	Generate(itemID, objectName string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (itemID, objectName string, expiresAt time.Time, err error)
}

type cacheMetricsObserver interface {
	ObserveCache(hit bool)
}

// LibraryDownload pairs item metadata with its opened content stream.
// The caller owns the stream and must close it.
type LibraryDownload struct {
	Item    *models.LibraryItem
	Content io.ReadSeekCloser
}

type cachedLibraryPage struct {
	Items      []models.LibraryItem `json:"items"`
	Pagination models.Pagination    `json:"pagination"`
}

// LibraryService serves the media library: cached listings, deletions that
// also remove the stored object, and signed short-lived download URLs.
type LibraryService struct {
	repo     libraryRepository
	cache    libraryCache
	storage  mediaStorage
	signer   downloadSigner
	metrics  cacheMetricsObserver
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewLibraryService constructs the service.
func NewLibraryService(repo libraryRepository, cache libraryCache, store mediaStorage, signer downloadSigner, metrics cacheMetricsObserver, logger *zap.Logger, cacheTTL time.Duration) *LibraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &LibraryService{
		repo:     repo,
		cache:    cache,
		storage:  store,
		signer:   signer,
		metrics:  metrics,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// List returns library items matching the filter, served from cache when a
// fresh entry exists. Cache failures degrade to a direct repository read.
func (s *LibraryService) List(ctx context.Context, filter models.LibraryFilter) ([]models.LibraryItem, *models.Pagination, error) {
	key := libraryCacheKey(filter)

	if s.cache != nil {
		var page cachedLibraryPage
		err := s.cache.Get(ctx, key, &page)
		if err == nil {
			s.observeCache(true)
			return page.Items, &page.Pagination, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("library cache read failed", zap.String("key", key), zap.Error(err))
		}
		s.observeCache(false)
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list library items")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	pagination := models.Pagination{Page: page, PageSize: size, TotalCount: total}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, cachedLibraryPage{Items: items, Pagination: pagination}, s.cacheTTL); err != nil {
			s.logger.Warn("library cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return items, &pagination, nil
}

// Get returns one library item.
func (s *LibraryService) Get(ctx context.Context, id string) (*models.LibraryItem, error) {
	return s.item(ctx, id)
}

// Delete removes an item's metadata, its stored object, and the listing cache.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
	item, err := s.item(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete library item")
	}
	if err := s.storage.Delete(item.ObjectName); err != nil {
		s.logger.Warn("failed to remove stored object", zap.String("object", item.ObjectName), zap.Error(err))
	}
	s.invalidate(ctx)
	return nil
}

// DownloadURL issues a short-lived signed download URL for an item. basePath
// is the route the token is redeemed at, e.g. /api/v1/library/download.
func (s *LibraryService) DownloadURL(ctx context.Context, id, basePath string) (*dto.LibraryDownloadResponse, error) {
	item, err := s.item(ctx, id)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := s.signer.Generate(item.ID, item.ObjectName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
	}
	return &dto.LibraryDownloadResponse{
		LibraryItem: *item,
		DownloadURL: fmt.Sprintf("%s?token=%s", basePath, token),
		ExpiresAt:   expiresAt,
	}, nil
}

// Download redeems a signed token and opens the stored object for streaming.
func (s *LibraryService) Download(ctx context.Context, token string) (*LibraryDownload, error) {
	itemID, objectName, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired download token")
	}
	item, err := s.item(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// The token must still refer to the object currently on record; a
	// re-uploaded item invalidates previously issued tokens.
	if item.ObjectName != objectName {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "download token no longer valid")
	}
	content, err := s.storage.Open(item.ObjectName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "stored file missing")
	}
	return &LibraryDownload{Item: item, Content: content}, nil
}

func (s *LibraryService) item(ctx context.Context, id string) (*models.LibraryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "library item not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load library item")
	}
	return item, nil
}

func (s *LibraryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, libraryCachePattern); err != nil {
		s.logger.Warn("failed to invalidate library cache", zap.Error(err))
	}
}

func (s *LibraryService) observeCache(hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveCache(hit)
	}
}

func libraryCacheKey(filter models.LibraryFilter) string {
	return fmt.Sprintf("library:%s:%s:%d:%d", filter.Kind, filter.Search, filter.Page, filter.PageSize)
}
