package imports

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// GetObjects lists the audio objects currently in the managed bucket
// @Summary      List stored audio objects
// @Tags         import
// @Produce      json
// @Success      200 {object} object{status=string,message=string,objects=[]ingest.AudioObject} "Stored audio objects"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/v1/import/objects [get]
func GetObjects(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		objects, err := deps.IngestService.ListAudioObjects(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list stored objects: %v", err)
			types.SendInternalError(c, "Failed to list stored objects")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"message": "Stored audio objects",
			"objects": objects,
			"count":   len(objects),
		})
	}
}
