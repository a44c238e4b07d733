// internal/app/system/ingest/seed.go
package ingest

// Fallback seed data used when the CSV snapshot cannot be loaded. The store
// must never start empty, so ingestion failure substitutes this fixed set
// instead of propagating the error.

func strptr(s string) *string { return &s }

// FallbackStudents returns the fixed student seed set.
func FallbackStudents() []StudentRow {
	return []StudentRow{
		{ID: "TP010001", Name: "Aisha Rahman", Email: "aisha.rahman@example.edu", Intake: "2024-09", Programme: "Computer Science", CGPA: "3.85", Credits: 15},
		{ID: "TP010002", Name: "Daniel Lim", Email: "daniel.lim@example.edu", Intake: "2024-09", Programme: "Software Engineering", CGPA: "2.80", Credits: 12},
		{ID: "TP010003", Name: "Priya Nair", Email: "priya.nair@example.edu", Intake: "2025-01", Programme: "Data Science", CGPA: "1.75", Credits: 9},
	}
}

// FallbackSubjects returns the fixed subject seed set.
func FallbackSubjects() []SubjectRow {
	return []SubjectRow{
		{Code: "CS101", Name: "Programming Fundamentals", Grade: strptr("A"), Status: "pass", StudentID: strptr("TP010001")},
		{Code: "CS205", Name: "Data Structures", Grade: strptr("A-"), Status: "pass", StudentID: strptr("TP010001")},
		{Code: "SE110", Name: "Software Design", Grade: strptr("B"), Status: "pass", StudentID: strptr("TP010002")},
		{Code: "DS120", Name: "Statistics I", Grade: nil, Status: "in_progress", StudentID: strptr("TP010003")},
	}
}
