package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
	"github.com/podhaven/ingest-api/internal/services/episodes"
)

// GetByID returns a single episode
// @Summary      Get episode by ID
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.EpisodeResponse "Episode"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episode, err := deps.EpisodeRepo.GetEpisodeByID(c.Request.Context(), episodeID)
		if err != nil {
			if episodes.IsNotFound(err) {
				types.SendNotFound(c, "Episode not found")
			} else {
				log.Printf("[ERROR] Failed to fetch episode %d: %v", episodeID, err)
				types.SendInternalError(c, "Failed to fetch episode")
			}
			return
		}

		c.JSON(http.StatusOK, types.EpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Episode found"},
			Episode:      episode,
		})
	}
}
