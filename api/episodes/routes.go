package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/podhaven/ingest-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/episodes - Upload a new episode (multipart)
	router.POST("", PostCreate(deps))

	// GET /api/v1/episodes/recent - Most recently released episodes
	router.GET("/recent", GetRecent(deps))

	// GET /api/v1/episodes/:id - Get episode details
	router.GET("/:id", GetByID(deps))

	// DELETE /api/v1/episodes/:id - Delete episode and its stored files
	router.DELETE("/:id", Delete(deps))

	// PUT /api/v1/episodes/:id/view - Record one view
	router.PUT("/:id/view", PutView(deps))

	// PUT /api/v1/episodes/:id/play - Record one play
	router.PUT("/:id/play", PutPlay(deps))
}
