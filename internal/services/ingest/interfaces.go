package ingest

import (
	"context"
	"time"

	"github.com/podhaven/ingest-api/internal/models"
)

// IngestRequest carries one uploaded episode through the pipeline.
// Audio holds the full payload: the upload consumes the request stream, so
// the caller must hand over buffered bytes that can be re-read for
// duration extraction.
type IngestRequest struct {
	PodcastID uint

	Audio            []byte
	AudioFilename    string
	AudioContentType string

	Thumbnail            []byte
	ThumbnailFilename    string
	ThumbnailContentType string

	Title       string
	Description string
	Host        string
	Topic       string

	// DurationHint is the caller-supplied duration form field, used only
	// when codec-level extraction fails.
	DurationHint string

	ReleaseDate *time.Time
}

// IngestResult describes a successfully persisted upload
type IngestResult struct {
	Episode      *models.Episode
	AudioURL     string
	ThumbnailURL string
}

// ImportRequest imports one already-stored object as an episode
type ImportRequest struct {
	Key         string
	Title       string
	Description string
	Host        string
	Topic       string
	Duration    int
}

// ImportFailure records one object the bulk import could not persist
type ImportFailure struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// ImportReport summarizes one bulk import run
type ImportReport struct {
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
	Failures []ImportFailure `json:"failures,omitempty"`
}

// AudioObject is a stored audio object with its resolved public URL
type AudioObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}

// IngestService defines the business logic interface for the media
// ingestion pipeline
type IngestService interface {
	IngestEpisode(ctx context.Context, req IngestRequest) (*IngestResult, error)
	DeleteEpisode(ctx context.Context, episodeID uint) error
	RecordView(ctx context.Context, episodeID uint) error
	RecordPlay(ctx context.Context, episodeID uint) error

	ListAudioObjects(ctx context.Context) ([]AudioObject, error)
	ImportObject(ctx context.Context, req ImportRequest) (*models.Episode, error)
	ImportAll(ctx context.Context) (*ImportReport, error)
}
