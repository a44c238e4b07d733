package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseStudents(t *testing.T) {
	in := strings.NewReader(
		"id,name,email,intake,programme,cgpa,credits\n" +
			"TP010001,Aisha Rahman,aisha@test.edu,2024-09,Computer Science,3.85,15\n" +
			"TP010002,Daniel Lim,daniel@test.edu,2025-01,Software Engineering,2.80,12\n")

	rows, err := ParseStudents(in)
	if err != nil {
		t.Fatalf("ParseStudents: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	want := StudentRow{
		ID: "TP010001", Name: "Aisha Rahman", Email: "aisha@test.edu",
		Intake: "2024-09", Programme: "Computer Science", CGPA: "3.85", Credits: 15,
	}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
}

func TestParseStudents_NoHeaderWithBOM(t *testing.T) {
	in := strings.NewReader("\ufeffTP010001,Aisha,aisha@test.edu,2024-09,CS,3.85,15\n")

	rows, err := ParseStudents(in)
	if err != nil {
		t.Fatalf("ParseStudents: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "TP010001" {
		t.Errorf("rows = %+v, want the single BOM-prefixed row", rows)
	}
}

func TestParseStudents_CreditsDefaultToZero(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"missing column", "TP010001,Aisha,a@test.edu,2024-09,CS,3.85"},
		{"empty cell", "TP010001,Aisha,a@test.edu,2024-09,CS,3.85,"},
		{"malformed cell", "TP010001,Aisha,a@test.edu,2024-09,CS,3.85,abc"},
		{"negative", "TP010001,Aisha,a@test.edu,2024-09,CS,3.85,-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseStudents(strings.NewReader(tt.row + "\n"))
			if err != nil {
				t.Fatalf("ParseStudents: %v", err)
			}
			if rows[0].Credits != 0 {
				t.Errorf("Credits = %d, want 0", rows[0].Credits)
			}
		})
	}
}

func TestParseStudents_MissingIDRejected(t *testing.T) {
	if _, err := ParseStudents(strings.NewReader(",Aisha,a@test.edu,2024-09,CS,3.85,15\n")); err == nil {
		t.Error("want error for row with no id")
	}
}

func TestParseStudents_SkipsBlankLines(t *testing.T) {
	in := strings.NewReader("TP010001,Aisha,a@test.edu,2024-09,CS,3.85,15\n\n  , , \n")
	rows, err := ParseStudents(in)
	if err != nil {
		t.Fatalf("ParseStudents: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len = %d, want 1", len(rows))
	}
}

func TestParseStudents_SkipsWhitespaceFirstRow(t *testing.T) {
	// A whitespace-only leading row is a blank line like any other,
	// not a row with a missing id.
	in := strings.NewReader("  , , \nTP010001,Aisha,a@test.edu,2024-09,CS,3.85,15\n")
	rows, err := ParseStudents(in)
	if err != nil {
		t.Fatalf("ParseStudents: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "TP010001" {
		t.Errorf("rows = %+v, want the single real row", rows)
	}
}

func TestParseSubjects(t *testing.T) {
	in := strings.NewReader(
		"code,name,grade,status,student_id\n" +
			"CS101,Programming Fundamentals,A,pass,TP010001\n" +
			"DS120,Statistics I,,in_progress,\n")

	rows, err := ParseSubjects(in)
	if err != nil {
		t.Fatalf("ParseSubjects: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].Grade == nil || *rows[0].Grade != "A" {
		t.Errorf("rows[0].Grade = %v, want A", rows[0].Grade)
	}
	if rows[0].StudentID == nil || *rows[0].StudentID != "TP010001" {
		t.Errorf("rows[0].StudentID = %v, want TP010001", rows[0].StudentID)
	}
	// Empty cells stay absent, not "".
	if rows[1].Grade != nil || rows[1].StudentID != nil {
		t.Errorf("rows[1] absent markers = (%v, %v), want (nil, nil)", rows[1].Grade, rows[1].StudentID)
	}
}

func TestLoadStudents_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	content := "id,name,email,intake,programme,cgpa,credits\nTP1,A,a@t.edu,2024-09,CS,3.50,12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := LoadStudents(path)
	if err != nil {
		t.Fatalf("LoadStudents: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "TP1" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestLoadStudents_MissingFile(t *testing.T) {
	if _, err := LoadStudents(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestFallbackSets_NotEmpty(t *testing.T) {
	students := FallbackStudents()
	if len(students) == 0 {
		t.Fatal("fallback student set is empty; the store must never start empty")
	}
	if len(FallbackSubjects()) == 0 {
		t.Fatal("fallback subject set is empty")
	}

	seen := map[string]bool{}
	for _, s := range students {
		if s.ID == "" {
			t.Error("fallback student with empty id")
		}
		if seen[s.ID] {
			t.Errorf("duplicate fallback id %s", s.ID)
		}
		seen[s.ID] = true
	}
}
