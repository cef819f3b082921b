package imports

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// PostImportAll imports every stored audio object not yet referenced
// @Summary      Bulk import stored objects
// @Description  Create episodes for all unreferenced stored audio objects; re-running imports nothing new
// @Tags         import
// @Produce      json
// @Success      200 {object} object{status=string,message=string,report=ingest.ImportReport} "Import report"
// @Failure      400 {object} types.ErrorResponse "No users available"
// @Failure      500 {object} types.ErrorResponse "Storage or database failure"
// @Router       /api/v1/import/all [post]
func PostImportAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := deps.IngestService.ImportAll(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Bulk import failed: %v", err)
			types.SendIngestError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"message": fmt.Sprintf("Successfully imported %d episodes", report.Imported),
			"report":  report,
		})
	}
}
