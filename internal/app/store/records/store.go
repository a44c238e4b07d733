// internal/app/store/records/store.go
package recordstore

import (
	"errors"
	"sync"

	"github.com/dalemusser/gradehub/internal/domain/models"
)

// ErrNotFound is returned when a lookup resolves to no student.
var ErrNotFound = errors.New("student not found")

// Store is the canonical in-memory holder of student and subject records.
// All state is volatile and rebuilt from ingestion at process start.
//
// Reads return insertion-ordered snapshots; mutators take the write lock so
// concurrent callers never observe a partially applied write. Returned
// values are copies, never aliases of internal slices.
type Store struct {
	mu           sync.RWMutex
	students     map[string]models.Student
	studentOrder []string
	subjects     []models.Subject
}

// New constructs an empty Store. Callers seed it via CreateStudent and
// CreateSubject (see bootstrap.ConnectDB).
func New() *Store {
	return &Store{
		students: make(map[string]models.Student),
	}
}

// Counts reports how many students and subjects the store holds.
func (s *Store) Counts() (students, subjects int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students), len(s.subjects)
}

// joinLocked builds the read-time composite for one student. Callers must
// hold at least the read lock.
func (s *Store) joinLocked(st models.Student) models.StudentWithSubjects {
	return models.StudentWithSubjects{
		Student:  st,
		Subjects: s.subjectsOfLocked(st.ID),
	}
}

// subjectsOfLocked returns the insertion-ordered subjects linked to the
// given student key. Callers must hold at least the read lock.
func (s *Store) subjectsOfLocked(studentID string) []models.Subject {
	out := []models.Subject{}
	for _, sub := range s.subjects {
		if sub.StudentID != nil && *sub.StudentID == studentID {
			out = append(out, sub)
		}
	}
	return out
}
