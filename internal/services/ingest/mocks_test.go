package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/podhaven/ingest-api/internal/models"
	"github.com/podhaven/ingest-api/internal/services/blobstore"
	"github.com/podhaven/ingest-api/internal/services/episodes"
	"github.com/podhaven/ingest-api/internal/services/podcasts"
	"github.com/podhaven/ingest-api/internal/services/users"
)

// mockStore is an in-memory blobstore.Store that records every call
type mockStore struct {
	objects map[string][]byte
	listing []blobstore.Object

	putErr    error
	deleteErr error
	listErr   error

	putKeys    []string
	deleteKeys []string
}

func newMockStore() *mockStore {
	return &mockStore{objects: make(map[string][]byte)}
}

func (m *mockStore) Put(ctx context.Context, key string, data io.Reader, contentType string) error {
	m.putKeys = append(m.putKeys, key)
	if m.putErr != nil {
		return m.putErr
	}
	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.objects[key] = buf
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.deleteKeys = append(m.deleteKeys, key)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.objects, key)
	return nil
}

func (m *mockStore) List(ctx context.Context) ([]blobstore.Object, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listing, nil
}

func (m *mockStore) URLFor(key string) string {
	return "https://test-bucket.example.com/" + key
}

func (m *mockStore) OwnsURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "https://test-bucket.example.com/")
}

func (m *mockStore) KeyForURL(rawURL string) (string, error) {
	if !m.OwnsURL(rawURL) {
		return "", errors.New("url outside managed bucket")
	}
	return strings.TrimPrefix(rawURL, "https://test-bucket.example.com/"), nil
}

// mockExtractor returns a fixed duration or error
type mockExtractor struct {
	duration int
	err      error
	calls    int
}

func (m *mockExtractor) ExtractDurationSeconds(ctx context.Context, data []byte, filenameHint string) (int, error) {
	m.calls++
	return m.duration, m.err
}

// mockEpisodeRepo is an in-memory episodes.EpisodeRepository
type mockEpisodeRepo struct {
	episodes map[uint]*models.Episode
	nextID   uint

	createErr     error
	existsErr     error
	deleteErr     error
	failAudioURLs map[string]bool
}

func newMockEpisodeRepo() *mockEpisodeRepo {
	return &mockEpisodeRepo{episodes: make(map[uint]*models.Episode), nextID: 1}
}

func (m *mockEpisodeRepo) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.failAudioURLs[episode.AudioURL] {
		return errors.New("insert failed")
	}
	for _, existing := range m.episodes {
		if existing.AudioURL == episode.AudioURL {
			return episodes.ErrDuplicateAudio
		}
	}
	episode.ID = m.nextID
	m.nextID++
	m.episodes[episode.ID] = episode
	return nil
}

func (m *mockEpisodeRepo) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	episode, ok := m.episodes[id]
	if !ok {
		return nil, episodes.NewNotFoundError("episode", id)
	}
	return episode, nil
}

func (m *mockEpisodeRepo) GetEpisodesByPodcastID(ctx context.Context, podcastID uint, page, limit int) ([]models.Episode, int64, error) {
	var result []models.Episode
	for _, episode := range m.episodes {
		if episode.PodcastID == podcastID {
			result = append(result, *episode)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockEpisodeRepo) GetRecentEpisodes(ctx context.Context, limit int) ([]models.Episode, error) {
	var result []models.Episode
	for _, episode := range m.episodes {
		result = append(result, *episode)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockEpisodeRepo) ExistsByAudioURL(ctx context.Context, audioURL string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, episode := range m.episodes {
		if episode.AudioURL == audioURL {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEpisodeRepo) IncrementViews(ctx context.Context, id uint) error {
	episode, ok := m.episodes[id]
	if !ok {
		return episodes.NewNotFoundError("episode", id)
	}
	episode.Views++
	return nil
}

func (m *mockEpisodeRepo) IncrementPlayCount(ctx context.Context, id uint) error {
	episode, ok := m.episodes[id]
	if !ok {
		return episodes.NewNotFoundError("episode", id)
	}
	episode.PlayCount++
	return nil
}

func (m *mockEpisodeRepo) DeleteEpisode(ctx context.Context, id uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.episodes[id]; !ok {
		return episodes.NewNotFoundError("episode", id)
	}
	delete(m.episodes, id)
	return nil
}

// mockPodcastRepo is an in-memory podcasts.PodcastRepository
type mockPodcastRepo struct {
	podcasts map[uint]*models.Podcast
	nextID   uint
}

func newMockPodcastRepo() *mockPodcastRepo {
	return &mockPodcastRepo{podcasts: make(map[uint]*models.Podcast), nextID: 1}
}

func (m *mockPodcastRepo) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	podcast.ID = m.nextID
	m.nextID++
	m.podcasts[podcast.ID] = podcast
	return nil
}

func (m *mockPodcastRepo) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, ok := m.podcasts[id]
	if !ok {
		return nil, podcasts.NotFoundError{ID: id}
	}
	return podcast, nil
}

func (m *mockPodcastRepo) GetAnyPodcast(ctx context.Context) (*models.Podcast, error) {
	var lowest *models.Podcast
	for _, podcast := range m.podcasts {
		if lowest == nil || podcast.ID < lowest.ID {
			lowest = podcast
		}
	}
	if lowest == nil {
		return nil, podcasts.NotFoundError{ID: "any"}
	}
	return lowest, nil
}

func (m *mockPodcastRepo) ListPodcasts(ctx context.Context, page, limit int) ([]models.Podcast, int64, error) {
	var result []models.Podcast
	for _, podcast := range m.podcasts {
		result = append(result, *podcast)
	}
	return result, int64(len(result)), nil
}

func (m *mockPodcastRepo) CountEpisodes(ctx context.Context, podcastID uint) (int64, error) {
	return 0, nil
}

// mockUserRepo is an in-memory users.UserRepository
type mockUserRepo struct {
	users []*models.User
}

func (m *mockUserRepo) GetAnyUser(ctx context.Context) (*models.User, error) {
	if len(m.users) == 0 {
		return nil, users.ErrNoUsers
	}
	return m.users[0], nil
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uint(len(m.users) + 1)
	m.users = append(m.users, user)
	return nil
}

// testFixture bundles a service with all its mocks
type testFixture struct {
	store     *mockStore
	extractor *mockExtractor
	episodes  *mockEpisodeRepo
	podcasts  *mockPodcastRepo
	users     *mockUserRepo
	service   *Service
}

func newTestFixture(opts ...ServiceOption) *testFixture {
	f := &testFixture{
		store:     newMockStore(),
		extractor: &mockExtractor{duration: 180},
		episodes:  newMockEpisodeRepo(),
		podcasts:  newMockPodcastRepo(),
		users:     &mockUserRepo{},
	}
	f.service = NewService(f.store, f.extractor, f.episodes, f.podcasts, f.users, opts...)
	return f
}

func (f *testFixture) seedPodcast() *models.Podcast {
	podcast := &models.Podcast{Title: "Seeded", Category: "Tech", CreatorID: 1}
	_ = f.podcasts.CreatePodcast(context.Background(), podcast)
	return podcast
}

func (f *testFixture) seedUser() *models.User {
	user := &models.User{Email: "a@example.com", Username: "a", PasswordHash: "x"}
	_ = f.users.CreateUser(context.Background(), user)
	return user
}

func listingObject(key string, size int64) blobstore.Object {
	return blobstore.Object{Key: key, Size: size, LastModified: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}
