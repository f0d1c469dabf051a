package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markme/markme-api/internal/service"
	"github.com/markme/markme-api/internal/utils"
)

const invalidSlotMessage = "Invalid slot: must not contain '.' or start with '$'."

type MarkAttendanceRequest struct {
	USN     string `json:"usn"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Present *bool  `json:"present"`
}

type AttendanceHandler struct {
	ledger  *service.AttendanceLedger
	timeout time.Duration
}

func NewAttendanceHandler(ledger *service.AttendanceLedger, timeout time.Duration) *AttendanceHandler {
	return &AttendanceHandler{ledger: ledger, timeout: timeout}
}

// Mark handles POST /attendance/mark
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	// An empty body falls through to field validation.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponse(c, 400, "Invalid request body.")
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	record, err := h.ledger.Mark(ctx, service.MarkInput{
		USN:     req.USN,
		Date:    req.Date,
		Slot:    req.Slot,
		Present: req.Present,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			utils.ErrorResponse(c, 400, "Missing required fields: usn, date, slot, present.")
		case errors.Is(err, service.ErrInvalidField):
			utils.ErrorResponse(c, 400, invalidSlotMessage)
		default:
			logError(c, "marking attendance", err)
			utils.ErrorResponse(c, 500, "Failed to mark attendance.")
		}
		return
	}

	utils.SuccessResponse(c, 200, gin.H{
		"message":    fmt.Sprintf("Attendance marked for %s on %s.", record.USN, record.Date),
		"attendance": record,
	})
}

// Absentees handles GET /attendance/absentees?date=&slot=
func (h *AttendanceHandler) Absentees(c *gin.Context) {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	usns, err := h.ledger.Absentees(ctx, service.AbsenteeQuery{
		Date: c.Query("date"),
		Slot: c.Query("slot"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			utils.ErrorResponse(c, 400, "Missing required query parameters: date, slot.")
		case errors.Is(err, service.ErrInvalidField):
			utils.ErrorResponse(c, 400, invalidSlotMessage)
		default:
			logError(c, "fetching absentees", err)
			utils.ErrorResponse(c, 500, "Failed to fetch absentees.")
		}
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"absentees": usns})
}
