package utils

import "github.com/gin-gonic/gin"

const RequestIDKey = "requestId"

func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
