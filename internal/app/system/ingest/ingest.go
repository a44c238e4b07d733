// Package ingest loads the startup CSV snapshot of students and subjects.
//
// Parsing is deliberately forgiving the same way the member CSV upload is:
// an optional header row is skipped, a UTF-8 BOM on the first cell is
// stripped, blank lines are ignored, and short rows are padded with empty
// fields. The store receives already-shaped records; nothing here touches
// the store directly.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// StudentRow is one parsed student record.
//
// Column order: id, name, email, intake, programme, cgpa, credits.
type StudentRow struct {
	ID        string
	Name      string
	Email     string
	Intake    string
	Programme string
	CGPA      string
	Credits   int
}

// SubjectRow is one parsed subject record. Grade and StudentID stay nil when
// the cell is empty.
//
// Column order: code, name, grade, status, student_id.
type SubjectRow struct {
	Code      string
	Name      string
	Status    string
	Grade     *string
	StudentID *string
}

// LoadStudents reads the student CSV at path.
func LoadStudents(path string) ([]StudentRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStudents(f)
}

// LoadSubjects reads the subject CSV at path.
func LoadSubjects(path string) ([]SubjectRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSubjects(f)
}

// ParseStudents parses student rows from r.
func ParseStudents(r io.Reader) ([]StudentRow, error) {
	raw, err := readAll(r, "id")
	if err != nil {
		return nil, err
	}

	rows := []StudentRow{}
	for i, rec := range raw {
		rec = pad(rec, 7)
		row := StudentRow{
			ID:        strings.TrimSpace(rec[0]),
			Name:      strings.TrimSpace(rec[1]),
			Email:     strings.TrimSpace(rec[2]),
			Intake:    strings.TrimSpace(rec[3]),
			Programme: strings.TrimSpace(rec[4]),
			CGPA:      strings.TrimSpace(rec[5]),
		}
		if row.ID == "" {
			return nil, fmt.Errorf("students csv: row %d has no id", i+1)
		}
		// Missing or malformed credits materialize as 0.
		if c := strings.TrimSpace(rec[6]); c != "" {
			if n, err := strconv.Atoi(c); err == nil && n >= 0 {
				row.Credits = n
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseSubjects parses subject rows from r.
func ParseSubjects(r io.Reader) ([]SubjectRow, error) {
	raw, err := readAll(r, "code")
	if err != nil {
		return nil, err
	}

	rows := []SubjectRow{}
	for i, rec := range raw {
		rec = pad(rec, 5)
		row := SubjectRow{
			Code:      strings.TrimSpace(rec[0]),
			Name:      strings.TrimSpace(rec[1]),
			Status:    strings.TrimSpace(rec[3]),
			Grade:     optional(rec[2]),
			StudentID: optional(rec[4]),
		}
		if row.Code == "" {
			return nil, fmt.Errorf("subjects csv: row %d has no code", i+1)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readAll collects the non-empty records from r, stripping a BOM and
// skipping the header when the first cell equals headerCell (fold-equal).
func readAll(r io.Reader, headerCell string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(first) > 0 {
		first[0] = strings.TrimPrefix(first[0], "\ufeff")
	}

	var raw [][]string
	if !allEmpty(first) && !strings.EqualFold(strings.TrimSpace(first[0]), headerCell) {
		raw = append(raw, first)
	}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 || allEmpty(rec) {
			continue
		}
		raw = append(raw, rec)
	}
	return raw, nil
}

func pad(rec []string, n int) []string {
	for len(rec) < n {
		rec = append(rec, "")
	}
	return rec
}

func allEmpty(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func optional(cell string) *string {
	v := strings.TrimSpace(cell)
	if v == "" {
		return nil
	}
	return &v
}
