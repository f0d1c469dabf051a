package service

import (
	"context"
	"errors"
	"testing"

	"github.com/markme/markme-api/internal/models"
	"github.com/markme/markme-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStudents struct{}

func (brokenStudents) List(context.Context, string) ([]models.StudentSummary, error) {
	return nil, errors.New("server selection timeout")
}

func (brokenStudents) FindByUSN(context.Context, string) (models.Student, error) {
	return models.Student{}, errors.New("server selection timeout")
}

func TestGetByUSNIsCaseInsensitive(t *testing.T) {
	dir := NewStudentDirectory(repository.NewMemoryStore(
		models.Student{USN: "1AB20CS001", Name: "Asha Rao", Phone: "9876543210"},
	))

	student, err := dir.GetByUSN(context.Background(), " 1ab20cs001")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", student.Name)
	assert.Equal(t, "9876543210", student.Phone)
}

func TestGetByUSNErrors(t *testing.T) {
	dir := NewStudentDirectory(repository.NewMemoryStore())

	_, err := dir.GetByUSN(context.Background(), "1AB20CS404")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = dir.GetByUSN(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewStudentDirectory(brokenStudents{}).GetByUSN(context.Background(), "1AB20CS001")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListTrimsSearch(t *testing.T) {
	dir := NewStudentDirectory(repository.NewMemoryStore(
		models.Student{USN: "1AB20CS001", Name: "Asha Rao"},
		models.Student{USN: "1AB20CS002", Name: "Ravi Kumar"},
	))

	students, err := dir.List(context.Background(), "  asha ")
	require.NoError(t, err)
	assert.Equal(t, []models.StudentSummary{{USN: "1AB20CS001", Name: "Asha Rao"}}, students)

	_, err = NewStudentDirectory(brokenStudents{}).List(context.Background(), "")
	assert.Error(t, err)
}
