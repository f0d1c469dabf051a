package repository

import (
	"context"
	"errors"

	"github.com/markme/markme-api/internal/models"
)

var ErrNotFound = errors.New("not found")

type StudentRepository interface {
	// List returns students whose USN or name contains search, ignoring
	// case, sorted by USN. An empty search matches every student.
	List(ctx context.Context, search string) ([]models.StudentSummary, error)
	FindByUSN(ctx context.Context, usn string) (models.Student, error)
}

type AttendanceRepository interface {
	// UpsertSlot sets slots[slot] = status on the (usn, date) record in one
	// atomic step, creating the record when absent, and returns the record
	// as stored after the write.
	UpsertSlot(ctx context.Context, usn, date, slot, status string) (models.Attendance, error)
	FindAbsentees(ctx context.Context, date, slot string) ([]string, error)
}
