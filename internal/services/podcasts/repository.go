package podcasts

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

var _ PodcastRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

func (r *Repository) GetAnyPodcast(ctx context.Context) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).Order("id ASC").First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: "any"}
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

func (r *Repository) ListPodcasts(ctx context.Context, page, limit int) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Podcast{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting podcasts: %w", err)
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing podcasts: %w", err)
	}

	return podcasts, total, nil
}

func (r *Repository) CountEpisodes(ctx context.Context, podcastID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("podcast_id = ?", podcastID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting episodes: %w", err)
	}
	return count, nil
}
