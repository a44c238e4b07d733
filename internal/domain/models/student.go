// internal/domain/models/student.go
package models

import (
	"strconv"
	"time"
)

// Student is an academic record keyed by an opaque string ID (typically the
// institution's ID token). Subjects are not embedded; they are joined on
// read via StudentWithSubjects.
//
// NOTE:
//   - CGPA is stored as text exactly as ingested and parsed on demand with
//     CGPAValue. The store does not validate the grading range.
//   - Email is expected unique by convention but not enforced here.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Intake    string `json:"intake"`    // cohort/semester grouping key
	Programme string `json:"programme"`
	CGPA      string `json:"cgpa"`
	Credits   int    `json:"credits"`

	CreatedAt time.Time `json:"created_at"`
}

// CGPAValue parses the CGPA text to a float. Malformed input yields 0; by
// contract the caller pre-validates, so this path is only hit on bad data.
func (s Student) CGPAValue() float64 {
	v, _ := strconv.ParseFloat(s.CGPA, 64)
	return v
}

// StudentWithSubjects is the read-time composite: a Student plus every
// Subject whose StudentID matches, in subject insertion order.
type StudentWithSubjects struct {
	Student
	Subjects []Subject `json:"subjects"`
}
