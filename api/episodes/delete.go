package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// Delete removes an episode and best-effort deletes its stored files
// @Summary      Delete episode
// @Description  Remove the episode record; stored audio and thumbnail objects are deleted when possible
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.BaseResponse "Episode deleted"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.IngestService.DeleteEpisode(c.Request.Context(), episodeID); err != nil {
			log.Printf("[ERROR] Failed to delete episode %d: %v", episodeID, err)
			types.SendIngestError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Episode and files deleted successfully",
		})
	}
}
