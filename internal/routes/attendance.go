package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/handlers"
	"github.com/markme/markme-api/internal/websocket"
)

func AttendanceRoutes(r *gin.Engine, h *handlers.AttendanceHandler, hub *websocket.Hub) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("/mark", h.Mark)
		attendance.GET("/absentees", h.Absentees)
		if hub != nil {
			attendance.GET("/live", hub.HandleWebSocket)
		}
	}
}
