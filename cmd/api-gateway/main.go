package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/lms-content-api/api/swagger"
	"github.com/noah-isme/lms-content-api/internal/handler"
	"github.com/noah-isme/lms-content-api/internal/middleware"
	"github.com/noah-isme/lms-content-api/internal/models"
	"github.com/noah-isme/lms-content-api/internal/repository"
	"github.com/noah-isme/lms-content-api/internal/service"
	"github.com/noah-isme/lms-content-api/pkg/cache"
	"github.com/noah-isme/lms-content-api/pkg/config"
	"github.com/noah-isme/lms-content-api/pkg/database"
	"github.com/noah-isme/lms-content-api/pkg/jobs"
	"github.com/noah-isme/lms-content-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/lms-content-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/lms-content-api/pkg/middleware/requestid"
	"github.com/noah-isme/lms-content-api/pkg/storage"
)

// @title LMS Content API
// @version 1.0.0
// @description Authoring backend for lesson content, media library and timing-synchronized line editing
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	// Redis is optional: without it the library listing is served uncached.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	localStorage, err := storage.NewLocalStorage(cfg.Uploads.StorageDir, cfg.Uploads.PublicBaseURL)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Library.SignedURLSecret, cfg.Library.SignedURLTTL)

	contentRepo := repository.NewContentRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	userRepo := repository.NewUserRepository(db)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	contentSvc := service.NewContentService(contentRepo, nil, logr)
	commentSvc := service.NewCommentService(contentRepo, nil, logr)
	librarySvc := service.NewLibraryService(libraryRepo, cacheRepo, localStorage, signer, metricsSvc, logr, cfg.Library.CacheTTL)
	exportSvc := service.NewExportService(contentSvc, logr)

	// The cleanup queue and the upload service reference each other; the
	// queue handler resolves the service through a closure.
	var uploadSvc *service.UploadService
	cleanupQueue := jobs.NewQueue("upload-cleanup", func(ctx context.Context, job jobs.Job) error {
		return uploadSvc.HandleCleanup(ctx, job)
	}, jobs.QueueConfig{
		Workers:    1,
		MaxRetries: cfg.Uploads.CleanupRetries,
		Logger:     logr,
	})
	uploadSvc = service.NewUploadService(libraryRepo, localStorage, cleanupQueue, cacheRepo, metricsSvc, logr, service.UploadServiceConfig{
		MaxFileSize:   cfg.Uploads.MaxFileSizeBytes,
		AudioMIMEs:    cfg.Uploads.AudioMIMEs,
		VideoMIMEs:    cfg.Uploads.VideoMIMEs,
		ImageMIMEs:    cfg.Uploads.ImageMIMEs,
		DocumentMIMEs: cfg.Uploads.DocumentMIMEs,
	})
	cleanupQueue.Start(context.Background())
	defer cleanupQueue.Stop()

	downloadPath := cfg.APIPrefix + "/library/download"

	authHandler := handler.NewAuthHandler(authSvc)
	contentHandler := handler.NewContentHandler(contentSvc, exportSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	libraryHandler := handler.NewLibraryHandler(librarySvc, downloadPath)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Uploaded media is served straight from local storage.
	r.Static("/files", cfg.Uploads.StorageDir)

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)
	// Download tokens carry their own signature; no bearer token required.
	api.GET("/library/download", libraryHandler.Download)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	{
		authed.GET("/auth/me", authHandler.Me)

		content := authed.Group("/content")
		content.GET("", contentHandler.List)
		content.POST("", contentHandler.Create)
		content.GET("/:id", contentHandler.Get)
		content.PUT("/update/:id", contentHandler.Update)
		content.DELETE("/:id", contentHandler.Delete)
		if cfg.Exports.Enabled {
			content.GET("/:id/export", contentHandler.Export)
		}
		content.POST("/:id/reorder", contentHandler.ReorderLessons)
		content.POST("/:id/lesson/:index/reorder", contentHandler.ReorderSubHeadings)
		content.POST("/:id/lesson/:index/subheading/:subIndex/detect-lines", contentHandler.DetectLines)
		content.GET("/:id/lesson/:index/comment", commentHandler.ListComments)
		content.POST("/:id/lesson/:index/comment", commentHandler.AddComment)
		content.DELETE("/:id/lesson/:index/comment/:commentIndex", commentHandler.DeleteComment)
		content.POST("/:id/lesson/:index/comment/:commentIndex/reply", commentHandler.AddReply)
		content.GET("/:id/lesson/:index/reaction", commentHandler.ListReactions)
		content.POST("/:id/lesson/:index/reaction", commentHandler.AddReaction)
		content.DELETE("/:id/lesson/:index/reaction/:reactionIndex", commentHandler.DeleteReaction)

		authed.POST("/uploads", uploadHandler.Upload)

		library := authed.Group("/library")
		library.GET("", libraryHandler.List)
		library.GET("/:id/download-url", libraryHandler.DownloadURL)
		library.DELETE("/:id", middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin), libraryHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
