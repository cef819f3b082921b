package podcasts

import (
	"context"

	"github.com/podhaven/ingest-api/internal/models"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)

	// GetAnyPodcast returns an arbitrary existing podcast, or a not found
	// error when the table is empty.
	GetAnyPodcast(ctx context.Context) (*models.Podcast, error)

	ListPodcasts(ctx context.Context, page, limit int) ([]models.Podcast, int64, error)
	CountEpisodes(ctx context.Context, podcastID uint) (int64, error)
}
