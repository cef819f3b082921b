package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// PutView records one view of an episode
// @Summary      Record a view
// @Description  Atomically increment the episode's view counter
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.BaseResponse "View recorded"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id}/view [put]
func PutView(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.IngestService.RecordView(c.Request.Context(), episodeID); err != nil {
			types.SendIngestError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "View recorded",
		})
	}
}
