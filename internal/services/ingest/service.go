package ingest

import (
	"bytes"
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/podhaven/ingest-api/internal/models"
	"github.com/podhaven/ingest-api/internal/services/blobstore"
	"github.com/podhaven/ingest-api/internal/services/episodes"
	"github.com/podhaven/ingest-api/internal/services/metadata"
	"github.com/podhaven/ingest-api/internal/services/podcasts"
	"github.com/podhaven/ingest-api/internal/services/users"
)

// DefaultMaxUploadBytes is the upload ceiling applied when none is configured
const DefaultMaxUploadBytes = 500 * 1024 * 1024

// Service implements IngestService. It holds no mutable state of its own;
// all concurrency correctness is delegated to the blob store and the
// repositories behind it.
type Service struct {
	store          blobstore.Store
	extractor      metadata.DurationExtractor
	episodes       episodes.EpisodeRepository
	podcasts       podcasts.PodcastRepository
	users          users.UserRepository
	maxUploadBytes int64
}

var _ IngestService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithMaxUploadBytes overrides the upload size ceiling
func WithMaxUploadBytes(max int64) ServiceOption {
	return func(s *Service) {
		if max > 0 {
			s.maxUploadBytes = max
		}
	}
}

// NewService creates a new ingestion service
func NewService(
	store blobstore.Store,
	extractor metadata.DurationExtractor,
	episodeRepo episodes.EpisodeRepository,
	podcastRepo podcasts.PodcastRepository,
	userRepo users.UserRepository,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		store:          store,
		extractor:      extractor,
		episodes:       episodeRepo,
		podcasts:       podcastRepo,
		users:          userRepo,
		maxUploadBytes: DefaultMaxUploadBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IngestEpisode runs the upload pipeline: validate, store the audio,
// extract duration, store the optional thumbnail, persist the record.
// Validation failures short-circuit before any side effect.
func (s *Service) IngestEpisode(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	if len(req.Audio) == 0 {
		return nil, ErrEmptyUpload
	}

	if !isAllowedAudio(req.AudioFilename, req.AudioContentType) {
		return nil, ErrUnsupportedMediaType
	}

	if int64(len(req.Audio)) > s.maxUploadBytes {
		return nil, ErrPayloadTooLarge
	}

	audioKey := ObjectKey(audioKeyPrefix, req.AudioFilename)

	if err := s.store.Put(ctx, audioKey, bytes.NewReader(req.Audio), req.AudioContentType); err != nil {
		return nil, StorageWriteError{Key: audioKey, Err: err}
	}
	audioURL := s.store.URLFor(audioKey)

	duration := s.extractDuration(ctx, req)

	thumbnailURL := s.uploadThumbnail(ctx, req)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DeriveTitle(req.AudioFilename)
	}

	releaseDate := time.Now().UTC()
	if req.ReleaseDate != nil {
		releaseDate = req.ReleaseDate.UTC()
	}

	episode := &models.Episode{
		PodcastID:    req.PodcastID,
		Title:        title,
		Description:  req.Description,
		AudioURL:     audioURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		ReleaseDate:  releaseDate,
		Views:        0,
		PlayCount:    0,
		Host:         req.Host,
		Topic:        req.Topic,
		Approved:     true,
	}

	if err := s.episodes.CreateEpisode(ctx, episode); err != nil {
		// The uploaded object is intentionally left in place: a later
		// import or reconciliation sweep can still find it by key.
		return nil, PersistenceError{Op: "create episode", Err: err}
	}

	return &IngestResult{
		Episode:      episode,
		AudioURL:     audioURL,
		ThumbnailURL: thumbnailURL,
	}, nil
}

// extractDuration probes the buffered audio bytes. Extraction failure is
// never fatal: the caller-supplied hint applies, then zero.
func (s *Service) extractDuration(ctx context.Context, req IngestRequest) int {
	if s.extractor != nil {
		duration, err := s.extractor.ExtractDurationSeconds(ctx, req.Audio, req.AudioFilename)
		if err == nil && duration >= 0 {
			return duration
		}
		if err != nil {
			log.Printf("[WARN] Could not extract duration from %s: %v", req.AudioFilename, err)
		}
	}

	if req.DurationHint != "" {
		if hint, err := strconv.Atoi(strings.TrimSpace(req.DurationHint)); err == nil && hint >= 0 {
			return hint
		}
	}

	return 0
}

// uploadThumbnail stores the optional thumbnail. Failure is absorbed: the
// episode proceeds with an empty thumbnail location.
func (s *Service) uploadThumbnail(ctx context.Context, req IngestRequest) string {
	if len(req.Thumbnail) == 0 {
		return ""
	}

	thumbKey := ObjectKey(thumbnailKeyPrefix, req.ThumbnailFilename)
	if err := s.store.Put(ctx, thumbKey, bytes.NewReader(req.Thumbnail), req.ThumbnailContentType); err != nil {
		log.Printf("[WARN] Failed to upload thumbnail %s: %v", thumbKey, err)
		return ""
	}
	return s.store.URLFor(thumbKey)
}

// DeleteEpisode removes the episode record and best-effort deletes its
// stored objects. Storage failures never block record deletion; the
// database must not be left with an undeletable row.
func (s *Service) DeleteEpisode(ctx context.Context, episodeID uint) error {
	episode, err := s.episodes.GetEpisodeByID(ctx, episodeID)
	if err != nil {
		if episodes.IsNotFound(err) {
			return ErrEpisodeNotFound
		}
		return PersistenceError{Op: "find episode", Err: err}
	}

	s.deleteStoredObject(ctx, episode.AudioURL)
	s.deleteStoredObject(ctx, episode.ThumbnailURL)

	if err := s.episodes.DeleteEpisode(ctx, episodeID); err != nil {
		if episodes.IsNotFound(err) {
			return ErrEpisodeNotFound
		}
		return PersistenceError{Op: "delete episode", Err: err}
	}

	return nil
}

// deleteStoredObject deletes the object behind rawURL when it lives in the
// managed bucket. Failures are logged and swallowed.
func (s *Service) deleteStoredObject(ctx context.Context, rawURL string) {
	if rawURL == "" || !s.store.OwnsURL(rawURL) {
		return
	}

	key, err := s.store.KeyForURL(rawURL)
	if err != nil {
		log.Printf("[WARN] Could not resolve storage key for %s: %v", rawURL, err)
		return
	}

	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("[WARN] Could not delete stored object %s: %v", key, err)
	}
}

// RecordView atomically increments the episode's view counter
func (s *Service) RecordView(ctx context.Context, episodeID uint) error {
	if err := s.episodes.IncrementViews(ctx, episodeID); err != nil {
		if episodes.IsNotFound(err) {
			return ErrEpisodeNotFound
		}
		return PersistenceError{Op: "increment views", Err: err}
	}
	return nil
}

// RecordPlay atomically increments the episode's play counter
func (s *Service) RecordPlay(ctx context.Context, episodeID uint) error {
	if err := s.episodes.IncrementPlayCount(ctx, episodeID); err != nil {
		if episodes.IsNotFound(err) {
			return ErrEpisodeNotFound
		}
		return PersistenceError{Op: "increment play count", Err: err}
	}
	return nil
}
