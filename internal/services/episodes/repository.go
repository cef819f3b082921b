package episodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/podhaven/ingest-api/internal/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateAudio, episode.AudioURL)
		}
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

func (r *Repository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("episode", id)
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) GetEpisodesByPodcastID(ctx context.Context, podcastID uint, page, limit int) ([]models.Episode, int64, error) {
	var episodes []models.Episode
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Episode{}).Where("podcast_id = ?", podcastID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting episodes: %w", err)
	}

	if err := query.
		Order("release_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&episodes).Error; err != nil {
		return nil, 0, fmt.Errorf("getting episodes: %w", err)
	}

	return episodes, total, nil
}

func (r *Repository) GetRecentEpisodes(ctx context.Context, limit int) ([]models.Episode, error) {
	var episodes []models.Episode

	if err := r.db.WithContext(ctx).
		Order("release_date DESC").
		Limit(limit).
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("getting recent episodes: %w", err)
	}

	return episodes, nil
}

func (r *Repository) ExistsByAudioURL(ctx context.Context, audioURL string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("audio_url = ?", audioURL).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking audio URL: %w", err)
	}
	return count > 0, nil
}

// IncrementViews bumps the view counter by one in a single UPDATE so
// concurrent playback events never lose increments.
func (r *Repository) IncrementViews(ctx context.Context, id uint) error {
	return r.incrementCounter(ctx, id, "views")
}

// IncrementPlayCount bumps the play counter by one in a single UPDATE.
func (r *Repository) IncrementPlayCount(ctx context.Context, id uint) error {
	return r.incrementCounter(ctx, id, "play_count")
}

func (r *Repository) incrementCounter(ctx context.Context, id uint, column string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("incrementing %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("episode", id)
	}
	return nil
}

// DeleteEpisode removes the row for good. A soft delete would keep the
// unique audio_url index occupied and block re-importing the same object.
func (r *Repository) DeleteEpisode(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("episode", id)
	}
	return nil
}
