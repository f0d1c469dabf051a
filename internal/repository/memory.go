package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/markme/markme-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type attendanceKey struct {
	usn  string
	date string
}

// MemoryStore keeps students and attendance in process memory. It satisfies
// both StudentRepository and AttendanceRepository with the same atomicity as
// the Mongo implementations: every UpsertSlot runs under one lock.
type MemoryStore struct {
	mu         sync.RWMutex
	students   map[string]models.Student
	attendance map[attendanceKey]*models.Attendance
}

func NewMemoryStore(students ...models.Student) *MemoryStore {
	s := &MemoryStore{
		students:   map[string]models.Student{},
		attendance: map[attendanceKey]*models.Attendance{},
	}
	s.AddStudents(students...)
	return s
}

func (s *MemoryStore) AddStudents(students ...models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range students {
		if st.ID.IsZero() {
			st.ID = primitive.NewObjectID()
		}
		s.students[st.USN] = st
	}
}

func (s *MemoryStore) List(_ context.Context, search string) ([]models.StudentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(search)
	out := []models.StudentSummary{}
	for _, st := range s.students {
		if term != "" &&
			!strings.Contains(strings.ToLower(st.USN), term) &&
			!strings.Contains(strings.ToLower(st.Name), term) {
			continue
		}
		out = append(out, models.StudentSummary{USN: st.USN, Name: st.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].USN < out[j].USN })
	return out, nil
}

func (s *MemoryStore) FindByUSN(_ context.Context, usn string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[usn]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	return st, nil
}

func (s *MemoryStore) UpsertSlot(_ context.Context, usn, date, slot, status string) (models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := attendanceKey{usn: usn, date: date}
	record, ok := s.attendance[key]
	if !ok {
		record = &models.Attendance{
			ID:    primitive.NewObjectID(),
			USN:   usn,
			Date:  date,
			Slots: map[string]string{},
		}
		s.attendance[key] = record
	}
	record.Slots[slot] = status

	return copyRecord(record), nil
}

// FindAbsentees returns matches sorted by USN so callers of the in-memory
// store see a stable order.
func (s *MemoryStore) FindAbsentees(_ context.Context, date, slot string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usns := []string{}
	for key, record := range s.attendance {
		if key.date == date && record.Slots[slot] == models.StatusAbsent {
			usns = append(usns, key.usn)
		}
	}
	sort.Strings(usns)
	return usns, nil
}

// Records returns a snapshot of every attendance record.
func (s *MemoryStore) Records() []models.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Attendance, 0, len(s.attendance))
	for _, record := range s.attendance {
		out = append(out, copyRecord(record))
	}
	return out
}

func copyRecord(r *models.Attendance) models.Attendance {
	slots := make(map[string]string, len(r.Slots))
	for k, v := range r.Slots {
		slots[k] = v
	}
	return models.Attendance{ID: r.ID, USN: r.USN, Date: r.Date, Slots: slots}
}

var (
	_ StudentRepository    = (*MemoryStore)(nil)
	_ AttendanceRepository = (*MemoryStore)(nil)
	_ StudentRepository    = (*MongoStudentRepository)(nil)
	_ AttendanceRepository = (*MongoAttendanceRepository)(nil)
)
