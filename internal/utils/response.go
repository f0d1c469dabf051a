package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes {"ok": true, ...payload}.
func SuccessResponse(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"ok":      false,
		"message": message,
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, statusCode int, message string) {
	ErrorResponse(c, statusCode, message)
	c.Abort()
}
