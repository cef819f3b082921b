package imports

import (
	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// RegisterRoutes registers import routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/import/objects - List stored audio objects
	router.GET("/objects", GetObjects(deps))

	// POST /api/v1/import - Import one stored object as an episode
	router.POST("", PostImport(deps))

	// POST /api/v1/import/all - Import every unreferenced stored object
	router.POST("/all", PostImportAll(deps))
}
