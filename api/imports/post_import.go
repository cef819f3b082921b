package imports

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
	"github.com/podhaven/ingest-api/internal/services/ingest"
)

// ImportFileRequest is the JSON body for importing a single stored object
type ImportFileRequest struct {
	Key         string `json:"key" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Host        string `json:"host"`
	Topic       string `json:"topic"`
	Duration    int    `json:"duration"`
}

// PostImport imports one stored object as an episode
// @Summary      Import a stored object
// @Description  Create an episode for an object already in the bucket; duplicate audio URLs are rejected
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request body ImportFileRequest true "Object to import"
// @Success      200 {object} object{status=string,message=string,episode_id=int} "Imported episode"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      409 {object} types.ErrorResponse "Episode already exists"
// @Router       /api/v1/import [post]
func PostImport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ImportFileRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		episode, err := deps.IngestService.ImportObject(c.Request.Context(), ingest.ImportRequest{
			Key:         req.Key,
			Title:       req.Title,
			Description: req.Description,
			Host:        req.Host,
			Topic:       req.Topic,
			Duration:    req.Duration,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to import object %s: %v", req.Key, err)
			types.SendIngestError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     types.StatusOK,
			"message":    "Episode imported successfully",
			"episode_id": episode.ID,
		})
	}
}
