// internal/domain/models/subject.go
package models

// Subject is a per-course record owned by at most one Student.
//
// NOTE:
//   - The link to a Student is a plain foreign-key match on StudentID;
//     there is no referential integrity and deletes do not cascade.
//   - Grade and StudentID use pointers so "absent" is distinct from "".
type Subject struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Grade     *string `json:"grade"`
	Status    string  `json:"status"` // e.g. pass | fail | in_progress
	StudentID *string `json:"student_id"`
}
