// internal/app/store/records/students.go
package recordstore

import (
	"time"

	"github.com/dalemusser/gradehub/internal/domain/models"
)

// NewStudent holds the fields accepted when creating a student. Credits is
// optional and materializes as 0 when the caller leaves it unset.
type NewStudent struct {
	ID        string
	Name      string
	Email     string
	Intake    string
	Programme string
	CGPA      string
	Credits   int
}

// StudentUpdate holds the fields that can be changed on an existing student.
// Nil fields are left untouched; ID and CreatedAt are never updatable.
type StudentUpdate struct {
	Name      *string
	Email     *string
	Intake    *string
	Programme *string
	CGPA      *string
	Credits   *int
}

// CreateStudent inserts a student, or silently overwrites when the key
// already exists (last write wins — a deliberate, documented policy). An
// overwritten student keeps its original slot in insertion order.
//
// The returned composite always carries an empty subject list: subjects are
// created separately and joined on subsequent reads.
func (s *Store) CreateStudent(n NewStudent) models.StudentWithSubjects {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.Student{
		ID:        n.ID,
		Name:      n.Name,
		Email:     n.Email,
		Intake:    n.Intake,
		Programme: n.Programme,
		CGPA:      n.CGPA,
		Credits:   n.Credits,
		CreatedAt: time.Now().UTC(),
	}
	if _, exists := s.students[n.ID]; !exists {
		s.studentOrder = append(s.studentOrder, n.ID)
	}
	s.students[n.ID] = st

	return models.StudentWithSubjects{Student: st, Subjects: []models.Subject{}}
}

// GetStudent loads a student by key, joined with its subjects. Returns
// ErrNotFound when the key does not exist.
func (s *Store) GetStudent(id string) (models.StudentWithSubjects, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return models.StudentWithSubjects{}, ErrNotFound
	}
	return s.joinLocked(st), nil
}

// GetStudentByEmail scans insertion order for the first student whose email
// matches exactly. Insertion-order iteration keeps "first match wins"
// deterministic when emails collide.
func (s *Store) GetStudentByEmail(email string) (models.StudentWithSubjects, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.studentOrder {
		if st := s.students[id]; st.Email == email {
			return s.joinLocked(st), nil
		}
	}
	return models.StudentWithSubjects{}, ErrNotFound
}

// AllStudents returns every student joined with its subjects, in insertion
// order.
func (s *Store) AllStudents() []models.StudentWithSubjects {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StudentWithSubjects, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		out = append(out, s.joinLocked(s.students[id]))
	}
	return out
}

// StudentsByIntake returns the subset of AllStudents whose intake matches
// the given key exactly (case-sensitive), preserving relative order.
func (s *Store) StudentsByIntake(intake string) []models.StudentWithSubjects {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.StudentWithSubjects{}
	for _, id := range s.studentOrder {
		if st := s.students[id]; st.Intake == intake {
			out = append(out, s.joinLocked(st))
		}
	}
	return out
}

// UpdateStudent merges the non-nil fields of u onto the stored student and
// returns the joined result. ID and CreatedAt are invariant under update.
func (s *Store) UpdateStudent(id string, u StudentUpdate) (models.StudentWithSubjects, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[id]
	if !ok {
		return models.StudentWithSubjects{}, ErrNotFound
	}
	if u.Name != nil {
		st.Name = *u.Name
	}
	if u.Email != nil {
		st.Email = *u.Email
	}
	if u.Intake != nil {
		st.Intake = *u.Intake
	}
	if u.Programme != nil {
		st.Programme = *u.Programme
	}
	if u.CGPA != nil {
		st.CGPA = *u.CGPA
	}
	if u.Credits != nil {
		st.Credits = *u.Credits
	}
	s.students[id] = st

	return s.joinLocked(st), nil
}

// DeleteStudent removes the student and reports whether a record was
// actually removed. Associated subjects are left in place; the linkage is a
// plain foreign-key match with no cascade.
func (s *Store) DeleteStudent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return false
	}
	delete(s.students, id)
	for i, key := range s.studentOrder {
		if key == id {
			s.studentOrder = append(s.studentOrder[:i], s.studentOrder[i+1:]...)
			break
		}
	}
	return true
}
