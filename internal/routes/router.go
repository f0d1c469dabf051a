package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/markme/markme-api/internal/handlers"
	"github.com/markme/markme-api/internal/middleware"
	"github.com/markme/markme-api/internal/service"
	"github.com/markme/markme-api/internal/websocket"
)

type Deps struct {
	Directory       *service.StudentDirectory
	Ledger          *service.AttendanceLedger
	Hub             *websocket.Hub
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	RequestTimeout  time.Duration
}

func NewRouter(d Deps) *gin.Engine {
	// Request bodies with fields we do not know are rejected as malformed.
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		middleware.CORS(d.AllowedOrigins),
		middleware.RateLimiter(d.RateLimitMax, d.RateLimitWindow),
	)

	HealthRoutes(r)
	StudentRoutes(r, handlers.NewStudentHandler(d.Directory, d.RequestTimeout))
	AttendanceRoutes(r, handlers.NewAttendanceHandler(d.Ledger, d.RequestTimeout), d.Hub)
	if d.Hub != nil && gin.Mode() != gin.ReleaseMode {
		DebugRoutes(r, d.Hub)
	}

	r.NoRoute(handlers.NotFound)
	return r
}
