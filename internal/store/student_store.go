package store

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/pkg/apperrors"
)

// StudentUpdate carries the optional fields of a partial roster update. Nil
// fields are left unchanged.
type StudentUpdate struct {
	Password *string
	YearPage *string
}

// StudentEntry pairs a student ID with its record for list responses.
type StudentEntry struct {
	ID      string
	Student models.Student
}

// StudentStore owns the student roster and its JSON mirror. Mutations are
// flushed to disk before success is reported; on a failed flush the in-memory
// change is kept (memory runs ahead of disk, by documented contract).
type StudentStore struct {
	mu       sync.RWMutex
	file     *jsonFile[map[string]models.Student]
	students map[string]models.Student
}

// OpenStudentStore loads the roster from path, starting empty when the file
// is missing or malformed.
func OpenStudentStore(path string, logger zerolog.Logger) *StudentStore {
	s := &StudentStore{
		file:     newJSONFile[map[string]models.Student](path, logger),
		students: make(map[string]models.Student),
	}
	s.file.Load(&s.students)
	if s.students == nil {
		s.students = make(map[string]models.Student)
	}
	return s
}

// Get returns the record for id.
func (s *StudentStore) Get(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	return st, ok
}

// List returns all roster entries ordered by student ID.
func (s *StudentStore) List() []StudentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]StudentEntry, 0, len(s.students))
	for id, st := range s.students {
		entries = append(entries, StudentEntry{ID: id, Student: st})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Insert adds a new student. A duplicate ID is a conflict and never
// overwrites the existing record.
func (s *StudentStore) Insert(id string, student models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.students[id]; exists {
		return apperrors.NewConflictError("Student with this ID already exists")
	}
	s.students[id] = student
	return s.file.Save(s.students)
}

// Update applies a partial update to an existing student.
func (s *StudentStore) Update(id string, update StudentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, exists := s.students[id]
	if !exists {
		return apperrors.NewNotFoundError("Student not found")
	}
	if update.Password != nil {
		student.Password = *update.Password
	}
	if update.YearPage != nil {
		student.YearPage = *update.YearPage
	}
	s.students[id] = student
	return s.file.Save(s.students)
}

// Delete removes a student by ID.
func (s *StudentStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.students[id]; !exists {
		return apperrors.NewNotFoundError("Student not found")
	}
	delete(s.students, id)
	return s.file.Save(s.students)
}
