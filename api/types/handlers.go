package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/internal/services/ingest"
)

// Handler utility functions shared across route packages

// ParseUintParam extracts and parses a URL parameter as uint.
// Sends an error response and returns false when parsing fails.
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError binds the JSON request body to target.
// Sends an error response and returns false when binding fails.
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: message})
}

// SendIngestError maps a pipeline error onto the HTTP taxonomy: validation
// and precondition failures are 4xx, infrastructure failures are 5xx. The
// response message carries the cause but never credentials.
func SendIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrEmptyUpload):
		SendBadRequest(c, "No audio file provided")
	case errors.Is(err, ingest.ErrUnsupportedMediaType):
		SendBadRequest(c, "Invalid file type. Only MP3, WAV, and M4A files are allowed.")
	case errors.Is(err, ingest.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Status:  StatusError,
			Message: "File exceeds the maximum upload size",
		})
	case errors.Is(err, ingest.ErrEpisodeNotFound):
		SendNotFound(c, "Episode not found")
	case errors.Is(err, ingest.ErrPodcastNotFound):
		SendNotFound(c, "Podcast not found")
	case errors.Is(err, ingest.ErrDuplicateAudioURL):
		c.JSON(http.StatusConflict, ErrorResponse{
			Status:  StatusError,
			Message: "This episode already exists in the database",
		})
	case errors.Is(err, ingest.ErrNoUsersAvailable):
		SendBadRequest(c, "No users found. Create a user first.")
	case ingest.IsStorageWrite(err):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  StatusError,
			Message: "Failed to upload file to storage",
			Error:   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  StatusError,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}
