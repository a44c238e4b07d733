// internal/app/store/records/subjects.go
package recordstore

import (
	"github.com/google/uuid"

	"github.com/dalemusser/gradehub/internal/domain/models"
)

// NewSubject holds the fields accepted when creating a subject. Grade and
// StudentID stay nil when absent; nothing verifies that StudentID points at
// an existing student.
type NewSubject struct {
	Code      string
	Name      string
	Status    string
	Grade     *string
	StudentID *string
}

// CreateSubject inserts a subject under a freshly generated key and returns
// it. Keys are independent of any caller-supplied value.
func (s *Store) CreateSubject(n NewSubject) models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.Subject{
		ID:        uuid.NewString(),
		Code:      n.Code,
		Name:      n.Name,
		Status:    n.Status,
		Grade:     n.Grade,
		StudentID: n.StudentID,
	}
	s.subjects = append(s.subjects, sub)
	return sub
}

// SubjectsByStudentID returns every subject linked to the given student key,
// in insertion order. The student itself need not exist.
func (s *Store) SubjectsByStudentID(studentID string) []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subjectsOfLocked(studentID)
}
