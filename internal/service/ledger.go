package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/markme/markme-api/internal/models"
	"github.com/markme/markme-api/internal/repository"
)

// Notifier receives an event after every successful mark.
type Notifier interface {
	Publish(event models.MarkEvent)
}

type MarkInput struct {
	USN     string `validate:"required"`
	Date    string `validate:"required"`
	Slot    string `validate:"required,slotkey"`
	Present *bool  `validate:"required"`
}

type AbsenteeQuery struct {
	Date string `validate:"required"`
	Slot string `validate:"required,slotkey"`
}

// AttendanceLedger records per-slot attendance. Dates are stored exactly as
// given (after trimming); no calendar validation is applied.
type AttendanceLedger struct {
	attendance repository.AttendanceRepository
	notifier   Notifier
	clock      func() time.Time
}

// NewAttendanceLedger builds a ledger. notifier may be nil.
func NewAttendanceLedger(attendance repository.AttendanceRepository, notifier Notifier) *AttendanceLedger {
	return &AttendanceLedger{
		attendance: attendance,
		notifier:   notifier,
		clock:      time.Now,
	}
}

func (l *AttendanceLedger) Mark(ctx context.Context, in MarkInput) (models.Attendance, error) {
	in.USN = NormalizeUSN(in.USN)
	in.Date = strings.TrimSpace(in.Date)
	in.Slot = strings.TrimSpace(in.Slot)
	if err := check(in); err != nil {
		return models.Attendance{}, err
	}

	status := models.StatusFor(*in.Present)
	record, err := l.attendance.UpsertSlot(ctx, in.USN, in.Date, in.Slot, status)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("mark %s on %s: %w", in.USN, in.Date, err)
	}

	if l.notifier != nil {
		l.notifier.Publish(models.MarkEvent{
			USN:      in.USN,
			Date:     in.Date,
			Slot:     in.Slot,
			Status:   status,
			MarkedAt: l.clock().UTC(),
		})
	}
	return record, nil
}

func (l *AttendanceLedger) Absentees(ctx context.Context, q AbsenteeQuery) ([]string, error) {
	q.Date = strings.TrimSpace(q.Date)
	q.Slot = strings.TrimSpace(q.Slot)
	if err := check(q); err != nil {
		return nil, err
	}

	usns, err := l.attendance.FindAbsentees(ctx, q.Date, q.Slot)
	if err != nil {
		return nil, fmt.Errorf("absentees for %s %s: %w", q.Date, q.Slot, err)
	}
	if usns == nil {
		usns = []string{}
	}
	return usns, nil
}
