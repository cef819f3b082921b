package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/podhaven/ingest-api/internal/models"
	"github.com/podhaven/ingest-api/internal/services/episodes"
	"github.com/podhaven/ingest-api/internal/services/podcasts"
	"github.com/podhaven/ingest-api/internal/services/users"
)

// Defaults applied to imported episodes when no metadata is supplied
const (
	importedDescription = "Imported from storage"
	importedHost        = "Unknown"
	importedTopic       = "General"
)

// ListAudioObjects lists every object in the bucket whose key carries an
// audio suffix, with its resolved public URL.
func (s *Service) ListAudioObjects(ctx context.Context) ([]AudioObject, error) {
	objects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stored objects: %w", err)
	}

	audio := make([]AudioObject, 0, len(objects))
	for _, obj := range objects {
		if !isAudioKey(obj.Key) {
			continue
		}
		audio = append(audio, AudioObject{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          s.store.URLFor(obj.Key),
		})
	}

	return audio, nil
}

// ImportObject creates an episode for one already-stored object. Objects
// whose URL is already referenced are rejected so re-imports never
// duplicate rows.
func (s *Service) ImportObject(ctx context.Context, req ImportRequest) (*models.Episode, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, ErrEmptyUpload
	}
	if !isAudioKey(key) {
		return nil, ErrUnsupportedMediaType
	}

	podcast, err := s.ensureDefaultPodcast(ctx)
	if err != nil {
		return nil, err
	}

	url := s.store.URLFor(key)

	exists, err := s.episodes.ExistsByAudioURL(ctx, url)
	if err != nil {
		return nil, PersistenceError{Op: "check audio URL", Err: err}
	}
	if exists {
		return nil, ErrDuplicateAudioURL
	}

	episode := s.importedEpisode(podcast.ID, key, time.Now().UTC())
	if title := strings.TrimSpace(req.Title); title != "" {
		episode.Title = title
	}
	if req.Description != "" {
		episode.Description = req.Description
	}
	if req.Host != "" {
		episode.Host = req.Host
	}
	if req.Topic != "" {
		episode.Topic = req.Topic
	}
	if req.Duration > 0 {
		episode.Duration = req.Duration
	}
	episode.AudioURL = url

	if err := s.episodes.CreateEpisode(ctx, episode); err != nil {
		if errors.Is(err, episodes.ErrDuplicateAudio) {
			return nil, ErrDuplicateAudioURL
		}
		return nil, PersistenceError{Op: "import episode", Err: err}
	}

	return episode, nil
}

// ImportAll creates episodes for every stored audio object that is not yet
// referenced. Re-running it with no new objects imports nothing. One
// object's failure never aborts the rest of the batch; the report counts
// actual successes.
func (s *Service) ImportAll(ctx context.Context) (*ImportReport, error) {
	objects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stored objects: %w", err)
	}

	podcast, err := s.ensureDefaultPodcast(ctx)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}

	for _, obj := range objects {
		if !isAudioKey(obj.Key) {
			continue
		}

		url := s.store.URLFor(obj.Key)

		exists, err := s.episodes.ExistsByAudioURL(ctx, url)
		if err != nil {
			report.Failures = append(report.Failures, ImportFailure{Key: obj.Key, Reason: err.Error()})
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		// The object's own last-modified time stands in for a release
		// date; duration stays 0 because the bulk path does not fetch
		// object bytes.
		episode := s.importedEpisode(podcast.ID, obj.Key, obj.LastModified)
		episode.AudioURL = url

		if err := s.episodes.CreateEpisode(ctx, episode); err != nil {
			log.Printf("[WARN] Failed to import %s: %v", obj.Key, err)
			report.Failures = append(report.Failures, ImportFailure{Key: obj.Key, Reason: err.Error()})
			continue
		}

		report.Imported++
	}

	return report, nil
}

func (s *Service) importedEpisode(podcastID uint, key string, releaseDate time.Time) *models.Episode {
	return &models.Episode{
		PodcastID:   podcastID,
		Title:       DeriveTitle(key),
		Description: importedDescription,
		Duration:    0,
		ReleaseDate: releaseDate.UTC(),
		Host:        importedHost,
		Topic:       importedTopic,
		Views:       0,
		PlayCount:   0,
		Approved:    true,
	}
}

// ensureDefaultPodcast returns an existing podcast, creating a default one
// owned by an arbitrary existing user when the table is empty.
//
// Open question for multi-tenant deployments: import fabricates ownership
// here (any user, first podcast wins). Requiring an explicit target
// podcast would be stricter; the documented fallback is kept as-is.
func (s *Service) ensureDefaultPodcast(ctx context.Context) (*models.Podcast, error) {
	podcast, err := s.podcasts.GetAnyPodcast(ctx)
	if err == nil {
		return podcast, nil
	}
	if !podcasts.IsNotFound(err) {
		return nil, PersistenceError{Op: "find podcast", Err: err}
	}

	user, err := s.users.GetAnyUser(ctx)
	if err != nil {
		if errors.Is(err, users.ErrNoUsers) {
			return nil, ErrNoUsersAvailable
		}
		return nil, PersistenceError{Op: "find user", Err: err}
	}

	podcast = &models.Podcast{
		Title:         "The Deep Dive",
		Description:   "Everything and anything in depth",
		Category:      "Education",
		CoverImageURL: "https://via.placeholder.com/300",
		CreatorID:     user.ID,
	}

	if err := s.podcasts.CreatePodcast(ctx, podcast); err != nil {
		return nil, PersistenceError{Op: "create default podcast", Err: err}
	}

	log.Printf("[INFO] Created default podcast %d owned by user %d", podcast.ID, user.ID)
	return podcast, nil
}
