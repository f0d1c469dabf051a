package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/utils"
)

const defaultTimeout = 5 * time.Second

func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// logError records the detail server-side; callers answer with a generic message.
func logError(c *gin.Context, action string, err error) {
	log.Printf("[ERROR] id=%s %s: %v", utils.RequestID(c), action, err)
}

func NotFound(c *gin.Context) {
	utils.ErrorResponse(c, 404, "Endpoint not found")
}
