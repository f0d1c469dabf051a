package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/markme/markme-api/internal/models"
	"github.com/markme/markme-api/internal/repository"
)

// NormalizeUSN trims and upper-cases a student number.
func NormalizeUSN(usn string) string {
	return strings.ToUpper(strings.TrimSpace(usn))
}

type StudentDirectory struct {
	students repository.StudentRepository
}

func NewStudentDirectory(students repository.StudentRepository) *StudentDirectory {
	return &StudentDirectory{students: students}
}

func (d *StudentDirectory) List(ctx context.Context, search string) ([]models.StudentSummary, error) {
	students, err := d.students.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (d *StudentDirectory) GetByUSN(ctx context.Context, usn string) (models.Student, error) {
	usn = NormalizeUSN(usn)
	if usn == "" {
		return models.Student{}, &FieldError{Kind: ErrMissingField, Fields: []string{"usn"}}
	}

	student, err := d.students.FindByUSN(ctx, usn)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Student{}, ErrNotFound
		}
		return models.Student{}, fmt.Errorf("get student %s: %w", usn, err)
	}
	return student, nil
}
