package episodes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/podhaven/ingest-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Shared cache keeps the in-memory database alive across the pool's
	// connections; a single open connection serializes concurrent writers.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))

	// Shared cache persists between tests in the same process
	db.Exec("DELETE FROM episodes")
	db.Exec("DELETE FROM podcasts")

	return db
}

func createTestEpisode(t *testing.T, db *gorm.DB, audioURL string) *models.Episode {
	t.Helper()

	episode := &models.Episode{
		PodcastID:   1,
		Title:       "Test Episode",
		AudioURL:    audioURL,
		Duration:    300,
		ReleaseDate: time.Now().UTC(),
		Approved:    true,
	}
	require.NoError(t, db.Create(episode).Error)
	return episode
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	episode := &models.Episode{
		PodcastID:   1,
		Title:       "Created",
		AudioURL:    "https://bucket.example.com/episodes/a.mp3",
		ReleaseDate: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateEpisode(ctx, episode))
	require.NotZero(t, episode.ID)

	got, err := repo.GetEpisodeByID(ctx, episode.ID)
	require.NoError(t, err)
	assert.Equal(t, "Created", got.Title)
	assert.Equal(t, episode.AudioURL, got.AudioURL)
}

func TestRepository_GetEpisodeByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetEpisodeByID(context.Background(), 9999)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
}

func TestRepository_DuplicateAudioURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := &models.Episode{PodcastID: 1, Title: "First", AudioURL: "https://bucket.example.com/episodes/dup.mp3"}
	require.NoError(t, repo.CreateEpisode(ctx, first))

	second := &models.Episode{PodcastID: 1, Title: "Second", AudioURL: "https://bucket.example.com/episodes/dup.mp3"}
	err := repo.CreateEpisode(ctx, second)
	assert.True(t, errors.Is(err, ErrDuplicateAudio))
}

func TestRepository_ExistsByAudioURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	createTestEpisode(t, db, "https://bucket.example.com/episodes/x.mp3")

	exists, err := repo.ExistsByAudioURL(ctx, "https://bucket.example.com/episodes/x.mp3")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByAudioURL(ctx, "https://bucket.example.com/episodes/y.mp3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_GetRecentEpisodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		episode := &models.Episode{
			PodcastID:   1,
			Title:       "Episode",
			AudioURL:    "https://bucket.example.com/episodes/r" + string(rune('a'+i)) + ".mp3",
			ReleaseDate: base.AddDate(0, 0, i),
		}
		require.NoError(t, db.Create(episode).Error)
	}

	recent, err := repo.GetRecentEpisodes(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first
	assert.True(t, recent[0].ReleaseDate.After(recent[1].ReleaseDate))
	assert.True(t, recent[1].ReleaseDate.After(recent[2].ReleaseDate))
}

func TestRepository_GetEpisodesByPodcastID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		episode := &models.Episode{
			PodcastID: 7,
			Title:     "Mine",
			AudioURL:  "https://bucket.example.com/episodes/p" + string(rune('a'+i)) + ".mp3",
		}
		require.NoError(t, db.Create(episode).Error)
	}
	createTestEpisode(t, db, "https://bucket.example.com/episodes/other.mp3")

	episodes, total, err := repo.GetEpisodesByPodcastID(ctx, 7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, episodes, 2)
}

func TestRepository_IncrementCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	episode := createTestEpisode(t, db, "https://bucket.example.com/episodes/c.mp3")

	require.NoError(t, repo.IncrementViews(ctx, episode.ID))
	require.NoError(t, repo.IncrementViews(ctx, episode.ID))
	require.NoError(t, repo.IncrementPlayCount(ctx, episode.ID))

	got, err := repo.GetEpisodeByID(ctx, episode.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
	assert.Equal(t, 1, got.PlayCount)
}

func TestRepository_IncrementCounters_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	assert.True(t, IsNotFound(repo.IncrementViews(context.Background(), 9999)))
	assert.True(t, IsNotFound(repo.IncrementPlayCount(context.Background(), 9999)))
}

func TestRepository_ConcurrentIncrements(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	episode := createTestEpisode(t, db, "https://bucket.example.com/episodes/hot.mp3")

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = repo.IncrementViews(ctx, episode.ID)
		}()
	}
	wg.Wait()

	got, err := repo.GetEpisodeByID(ctx, episode.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, got.Views, "no increment may be lost under concurrency")
}

func TestRepository_DeleteEpisode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	episode := createTestEpisode(t, db, "https://bucket.example.com/episodes/del.mp3")

	require.NoError(t, repo.DeleteEpisode(ctx, episode.ID))

	_, err := repo.GetEpisodeByID(ctx, episode.ID)
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(repo.DeleteEpisode(ctx, episode.ID)))
}
