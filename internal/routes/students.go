package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/handlers"
)

func StudentRoutes(r *gin.Engine, h *handlers.StudentHandler) {
	students := r.Group("/students")
	{
		students.GET("", h.List)
		students.GET("/:usn", h.Get)
	}
}

func HealthRoutes(r *gin.Engine) {
	r.GET("/", handlers.Health)
	r.GET("/home", handlers.Home)
}
