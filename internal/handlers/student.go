package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/service"
	"github.com/markme/markme-api/internal/utils"
)

type StudentHandler struct {
	directory *service.StudentDirectory
	timeout   time.Duration
}

func NewStudentHandler(directory *service.StudentDirectory, timeout time.Duration) *StudentHandler {
	return &StudentHandler{directory: directory, timeout: timeout}
}

// List handles GET /students?search=
func (h *StudentHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	students, err := h.directory.List(ctx, c.Query("search"))
	if err != nil {
		logError(c, "fetching students", err)
		utils.ErrorResponse(c, 500, "Failed to fetch students.")
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"data": students})
}

// Get handles GET /students/:usn
func (h *StudentHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	student, err := h.directory.GetByUSN(ctx, c.Param("usn"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			utils.ErrorResponse(c, 404, "Student not found.")
		case errors.Is(err, service.ErrMissingField):
			utils.ErrorResponse(c, 400, "Missing required parameter: usn.")
		default:
			logError(c, "fetching student "+c.Param("usn"), err)
			utils.ErrorResponse(c, 500, "Failed to fetch student details.")
		}
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"student": student})
}
