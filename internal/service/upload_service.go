package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-content-api/internal/dto"
	"github.com/noah-isme/lms-content-api/internal/models"
	appErrors "github.com/noah-isme/lms-content-api/pkg/errors"
	"github.com/noah-isme/lms-content-api/pkg/jobs"
	"github.com/noah-isme/lms-content-api/pkg/storage"
)

// JobTypeUploadCleanup labels compensation jobs that delete orphaned objects.
const JobTypeUploadCleanup = "upload_cleanup"

type libraryStore interface {
	Create(ctx context.Context, item *models.LibraryItem) error
}

type uploadFileStorage interface {
	SaveStream(objectName string, r io.Reader) (string, error)
	Delete(objectName string) error
	PublicURL(objectName string) string
}

type cleanupEnqueuer interface {
	Enqueue(job jobs.Job) error
}

type libraryCacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type uploadMetricsObserver interface {
	ObserveUpload(kind string, success bool)
}

// Upload carries metadata and the stream for one file transfer.
type Upload struct {
	Filename string
	Size     int64
	MimeType string
	Content  io.ReadSeeker
}

// UploadServiceConfig holds validation parameters for uploads.
type UploadServiceConfig struct {
	MaxFileSize   int64
	AudioMIMEs    []string
	VideoMIMEs    []string
	ImageMIMEs    []string
	DocumentMIMEs []string
}

// UploadService validates uploads against per-kind MIME allowlists, stores
// the object, and records library metadata. A disallowed file type is
// rejected before any storage write. When the metadata insert fails after the
// object was stored, a cleanup job is enqueued so the orphaned object is
// deleted rather than leaked.
type UploadService struct {
	repo    libraryStore
	storage uploadFileStorage
	cleanup cleanupEnqueuer
	cache   libraryCacheInvalidator
	metrics uploadMetricsObserver
	logger  *zap.Logger
	cfg     UploadServiceConfig
	allowed map[models.UploadKind]map[string]struct{}
}

// NewUploadService constructs the service with defaults.
func NewUploadService(repo libraryStore, store uploadFileStorage, cleanup cleanupEnqueuer, cache libraryCacheInvalidator, metrics uploadMetricsObserver, logger *zap.Logger, cfg UploadServiceConfig) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 50 * 1024 * 1024
	}
	if len(cfg.AudioMIMEs) == 0 {
		cfg.AudioMIMEs = []string{"audio/mpeg", "audio/mp4", "audio/wav", "audio/ogg", "audio/webm"}
	}
	if len(cfg.VideoMIMEs) == 0 {
		cfg.VideoMIMEs = []string{"video/mp4", "video/webm", "video/ogg", "video/quicktime"}
	}
	if len(cfg.ImageMIMEs) == 0 {
		cfg.ImageMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}
	if len(cfg.DocumentMIMEs) == 0 {
		cfg.DocumentMIMEs = []string{"application/pdf", "text/plain"}
	}
	allowed := map[models.UploadKind]map[string]struct{}{
		models.UploadKindAudio:    mimeSet(cfg.AudioMIMEs),
		models.UploadKindVideo:    mimeSet(cfg.VideoMIMEs),
		models.UploadKindImage:    mimeSet(cfg.ImageMIMEs),
		models.UploadKindDocument: mimeSet(cfg.DocumentMIMEs),
	}
	return &UploadService{
		repo:    repo,
		storage: store,
		cleanup: cleanup,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		allowed: allowed,
	}
}

// Upload transfers one file and records its library metadata.
func (s *UploadService) Upload(ctx context.Context, kind models.UploadKind, title string, upload Upload, actor *models.JWTClaims) (*dto.UploadResponse, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if !models.ValidUploadKind(kind) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown upload kind %q", kind))
	}
	if upload.Content == nil || upload.Size <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file is required")
	}
	if upload.Size > s.cfg.MaxFileSize {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes limit", s.cfg.MaxFileSize))
	}

	mimeType, err := s.detectMime(upload)
	if err != nil {
		return nil, err
	}
	if _, ok := s.allowed[kind][strings.ToLower(mimeType)]; !ok {
		s.observe(kind, false)
		return nil, appErrors.Clone(appErrors.ErrUnsupportedMedia, fmt.Sprintf("%s uploads do not accept %s", kind, mimeType))
	}

	objectName := storage.ObjectName(string(kind), upload.Filename, time.Now().UTC())
	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset upload stream")
	}
	if _, err := s.storage.SaveStream(objectName, upload.Content); err != nil {
		s.observe(kind, false)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload")
	}

	item := &models.LibraryItem{
		Title:      strings.TrimSpace(title),
		Kind:       kind,
		FileName:   upload.Filename,
		ObjectName: objectName,
		PublicURL:  s.storage.PublicURL(objectName),
		MimeType:   mimeType,
		SizeBytes:  upload.Size,
		UploadedBy: actor.UserID,
	}
	if item.Title == "" {
		item.Title = upload.Filename
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.compensate(objectName)
		s.observe(kind, false)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record upload metadata")
	}

	s.invalidateCache(ctx)
	s.observe(kind, true)
	return &dto.UploadResponse{Item: *item, URL: item.PublicURL}, nil
}

// HandleCleanup is the jobs queue handler deleting orphaned stored objects.
func (s *UploadService) HandleCleanup(ctx context.Context, job jobs.Job) error {
	objectName, ok := job.Payload.(string)
	if !ok || objectName == "" {
		return fmt.Errorf("cleanup job %s carries no object name", job.ID)
	}
	if err := s.storage.Delete(objectName); err != nil {
		return fmt.Errorf("cleanup stored object %s: %w", objectName, err)
	}
	s.logger.Info("removed orphaned upload", zap.String("object", objectName))
	return nil
}

// compensate schedules deletion of an object whose metadata insert failed.
// Falls back to a synchronous delete when no queue is configured.
func (s *UploadService) compensate(objectName string) {
	if s.cleanup != nil {
		if err := s.cleanup.Enqueue(jobs.Job{ID: uuid.NewString(), Type: JobTypeUploadCleanup, Payload: objectName}); err == nil {
			return
		}
	}
	if err := s.storage.Delete(objectName); err != nil {
		s.logger.Warn("failed to remove orphaned upload", zap.String("object", objectName), zap.Error(err))
	}
}

func (s *UploadService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "library:*"); err != nil {
		s.logger.Warn("failed to invalidate library cache", zap.Error(err))
	}
}

func (s *UploadService) observe(kind models.UploadKind, success bool) {
	if s.metrics != nil {
		s.metrics.ObserveUpload(string(kind), success)
	}
}

func (s *UploadService) detectMime(upload Upload) (string, error) {
	declared := strings.ToLower(strings.TrimSpace(strings.Split(upload.MimeType, ";")[0]))
	if declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}

	buf := make([]byte, 512)
	n, err := upload.Content.Read(buf)
	if err != nil && err != io.EOF {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sniff file type")
	}
	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset upload stream")
	}
	sniffed := http.DetectContentType(buf[:n])
	return strings.ToLower(strings.Split(sniffed, ";")[0]), nil
}

func mimeSet(mimes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(mimes))
	for _, m := range mimes {
		set[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}
	return set
}
