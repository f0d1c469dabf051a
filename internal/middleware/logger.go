package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/utils"
)

// RequestLogger writes one access line per request.
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(p gin.LogFormatterParams) string {
			id, _ := p.Keys[utils.RequestIDKey].(string)
			return fmt.Sprintf("[REQ] %s id=%s %s %s %s status=%d dur=%s\n",
				p.TimeStamp.Format(time.RFC3339),
				id,
				p.ClientIP,
				p.Method,
				p.Path,
				p.StatusCode,
				p.Latency,
			)
		},
	})
}

// Recovery turns a panic into the generic 500 envelope. gin logs the stack.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[PANIC] id=%s %v", utils.RequestID(c), recovered)
		utils.AbortWithError(c, 500, "An internal server error occurred.")
	})
}
