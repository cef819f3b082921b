package types

import (
	"github.com/podhaven/ingest-api/internal/database"
	"github.com/podhaven/ingest-api/internal/services/blobstore"
	"github.com/podhaven/ingest-api/internal/services/episodes"
	"github.com/podhaven/ingest-api/internal/services/ingest"
	"github.com/podhaven/ingest-api/internal/services/podcasts"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	IngestService  ingest.IngestService
	EpisodeRepo    episodes.EpisodeRepository
	PodcastRepo    podcasts.PodcastRepository
	BlobStore      blobstore.Store
	MaxUploadBytes int64
}
