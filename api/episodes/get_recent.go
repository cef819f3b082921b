package episodes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// GetRecent returns the most recently released episodes
// @Summary      Recent episodes
// @Tags         episodes
// @Produce      json
// @Param        limit query int false "Maximum number of episodes" default(20)
// @Success      200 {object} types.EpisodesResponse "Recent episodes"
// @Router       /api/v1/episodes/recent [get]
func GetRecent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		episodes, err := deps.EpisodeRepo.GetRecentEpisodes(c.Request.Context(), limit)
		if err != nil {
			log.Printf("[ERROR] Failed to fetch recent episodes: %v", err)
			types.SendInternalError(c, "Failed to fetch episodes")
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Recent episodes"},
			Episodes:     episodes,
			Count:        len(episodes),
		})
	}
}
