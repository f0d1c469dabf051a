package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/utils"
	"github.com/markme/markme-api/internal/websocket"
)

// DebugRoutes exposes live-feed stats. Not mounted in release mode.
func DebugRoutes(r *gin.Engine, hub *websocket.Hub) {
	r.GET("/debug/live", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, gin.H{"subscribers": hub.Count()})
	})
}
