package testutil

import (
	"testing"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
)

// StrPtr returns a pointer to s, for optional fields in test inputs.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// NewStudentFixture returns a create input with sensible defaults. Override
// fields on the returned value as needed.
func NewStudentFixture(id string) recordstore.NewStudent {
	return recordstore.NewStudent{
		ID:        id,
		Name:      "Student " + id,
		Email:     id + "@test.edu",
		Intake:    "2024-09",
		Programme: "Computer Science",
		CGPA:      "3.00",
		Credits:   12,
	}
}

// SeededStore builds a store holding the two reference students used across
// the analytics tests: S1 (cgpa 3.80, 15 credits) and S2 (cgpa 2.80,
// 15 credits), both in intake 2024-09.
func SeededStore(t *testing.T) *recordstore.Store {
	t.Helper()

	store := recordstore.New()
	s1 := NewStudentFixture("S1")
	s1.CGPA = "3.80"
	s1.Credits = 15
	store.CreateStudent(s1)

	s2 := NewStudentFixture("S2")
	s2.CGPA = "2.80"
	s2.Credits = 15
	store.CreateStudent(s2)

	return store
}
