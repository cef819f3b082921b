package episodes

import (
	"context"

	"github.com/podhaven/ingest-api/internal/models"
)

// EpisodeRepository defines the interface for episode data persistence
type EpisodeRepository interface {
	// Create operations
	CreateEpisode(ctx context.Context, episode *models.Episode) error

	// Read operations
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	GetEpisodesByPodcastID(ctx context.Context, podcastID uint, page, limit int) ([]models.Episode, int64, error)
	GetRecentEpisodes(ctx context.Context, limit int) ([]models.Episode, error)
	ExistsByAudioURL(ctx context.Context, audioURL string) (bool, error)

	// Counter operations. Implementations must perform the increment in a
	// single storage-level statement so concurrent calls never lose updates.
	IncrementViews(ctx context.Context, id uint) error
	IncrementPlayCount(ctx context.Context, id uint) error

	// Delete operations
	DeleteEpisode(ctx context.Context, id uint) error
}
