package types

import "github.com/podhaven/ingest-api/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// EpisodeResponse for a single episode
type EpisodeResponse struct {
	BaseResponse
	Episode *models.Episode `json:"episode"`
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []models.Episode `json:"episodes"`
	Count    int              `json:"count"`
	Total    int64            `json:"total,omitempty"`
}

// UploadResponse for a successful ingestion
type UploadResponse struct {
	BaseResponse
	EpisodeID    uint   `json:"episode_id"`
	AudioURL     string `json:"audio_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Duration     int    `json:"duration"`
}
