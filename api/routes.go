package api

import (
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/podhaven/ingest-api/api/episodes"
	"github.com/podhaven/ingest-api/api/health"
	"github.com/podhaven/ingest-api/api/imports"
	"github.com/podhaven/ingest-api/api/types"
	"github.com/podhaven/ingest-api/api/version"
	_ "github.com/podhaven/ingest-api/docs/swagger"
	"github.com/podhaven/ingest-api/internal/services/blobstore"
	episodesService "github.com/podhaven/ingest-api/internal/services/episodes"
	"github.com/podhaven/ingest-api/internal/services/ingest"
	"github.com/podhaven/ingest-api/internal/services/metadata"
	"github.com/podhaven/ingest-api/internal/services/podcasts"
	"github.com/podhaven/ingest-api/internal/services/users"
	"github.com/podhaven/ingest-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = cfg.Ingest.MaxUploadBytes
	}

	rateLimit := func(rps, burst int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.IngestService == nil {
			if err := initializeIngestService(deps, cfg); err != nil {
				return fmt.Errorf("failed to initialize ingest service: %w", err)
			}
		}

		// Register episode routes with general rate limiting (10 req/s, burst of 20).
		// Uploads carry the audio and thumbnail in one multipart body, so the
		// size limit on this group is the configured ceiling plus headroom.
		episodeGroup := v1.Group("/episodes")
		episodeGroup.Use(RequestSizeLimitWithSize(uploadBodyLimit(deps.MaxUploadBytes)))
		episodeGroup.Use(rateLimit(10, 20))
		episodes.RegisterRoutes(episodeGroup, deps)

		// Register import routes with strict rate limiting (2 req/s, burst of 4)
		// since a bulk import walks the whole bucket
		importGroup := v1.Group("/import")
		importGroup.Use(RequestSizeLimit())
		importGroup.Use(rateLimit(2, 4))
		imports.RegisterRoutes(importGroup, deps)
	} else {
		log.Printf("[WARN] Database not available, episode and import routes disabled")
	}

	return nil
}

// uploadBodyLimit returns the request body cap for multipart upload routes
func uploadBodyLimit(maxUploadBytes int64) int64 {
	if maxUploadBytes <= 0 {
		maxUploadBytes = config.DefaultMaxUploadBytes
	}
	// Headroom for the thumbnail part, form fields and multipart boundaries.
	// Oversized audio is still rejected by the service with a 413.
	return maxUploadBytes + 32*1024*1024
}

// initializeIngestService creates and configures the ingestion pipeline
func initializeIngestService(deps *types.Dependencies, cfg *config.Config) error {
	store := deps.BlobStore
	if store == nil {
		s3Store, err := blobstore.NewS3Store(cfg.Storage)
		if err != nil {
			return fmt.Errorf("creating blob store: %w", err)
		}
		store = s3Store
		deps.BlobStore = store
	}

	extractor := metadata.NewFFprobeExtractor(cfg.Metadata)

	episodeRepo := episodesService.NewRepository(deps.DB.DB)
	podcastRepo := podcasts.NewRepository(deps.DB.DB)
	userRepo := users.NewRepository(deps.DB.DB)

	deps.EpisodeRepo = episodeRepo
	deps.PodcastRepo = podcastRepo

	deps.IngestService = ingest.NewService(
		store,
		extractor,
		episodeRepo,
		podcastRepo,
		userRepo,
		ingest.WithMaxUploadBytes(cfg.Ingest.MaxUploadBytes),
	)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
