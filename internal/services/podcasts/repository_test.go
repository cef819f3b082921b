package podcasts

import (
	"context"
	"testing"

	"github.com/podhaven/ingest-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	podcast := &models.Podcast{Title: "Morning Show", Category: "News", CreatorID: 1}
	require.NoError(t, repo.CreatePodcast(ctx, podcast))
	require.NotZero(t, podcast.ID)

	got, err := repo.GetPodcastByID(ctx, podcast.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning Show", got.Title)
}

func TestRepository_GetPodcastByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetPodcastByID(context.Background(), 404)
	assert.True(t, IsNotFound(err))
}

func TestRepository_GetAnyPodcast(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.GetAnyPodcast(ctx)
	assert.True(t, IsNotFound(err), "empty table yields not found")

	first := &models.Podcast{Title: "First", Category: "Tech", CreatorID: 1}
	require.NoError(t, repo.CreatePodcast(ctx, first))
	second := &models.Podcast{Title: "Second", Category: "Tech", CreatorID: 1}
	require.NoError(t, repo.CreatePodcast(ctx, second))

	got, err := repo.GetAnyPodcast(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "lowest id wins for determinism")
}

func TestRepository_ListPodcasts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.CreatePodcast(ctx, &models.Podcast{Title: "P", Category: "Tech", CreatorID: 1}))
	}

	podcasts, total, err := repo.ListPodcasts(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, podcasts, 3)
}

func TestRepository_CountEpisodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	podcast := &models.Podcast{Title: "Counted", Category: "Tech", CreatorID: 1}
	require.NoError(t, repo.CreatePodcast(ctx, podcast))

	for i := 0; i < 2; i++ {
		episode := &models.Episode{
			PodcastID: podcast.ID,
			Title:     "E",
			AudioURL:  "https://bucket.example.com/episodes/" + string(rune('a'+i)) + ".mp3",
		}
		require.NoError(t, db.Create(episode).Error)
	}

	count, err := repo.CountEpisodes(ctx, podcast.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountEpisodes(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, count)
}
