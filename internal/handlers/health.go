package handlers

import "github.com/gin-gonic/gin"

const (
	serviceName    = "MarkMe API"
	serviceVersion = "1.0.0"
)

func Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"ok":      true,
		"service": serviceName,
	})
}

func Home(c *gin.Context) {
	c.JSON(200, gin.H{
		"ok":          true,
		"service":     serviceName,
		"version":     serviceVersion,
		"description": "Backend API for the MarkMe Attendance & Mentoring App",
	})
}
