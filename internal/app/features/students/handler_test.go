package students_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/gradehub/internal/app/features/students"
	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"github.com/dalemusser/gradehub/internal/domain/models"
	"github.com/dalemusser/gradehub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *recordstore.Store) {
	t.Helper()
	store := recordstore.New()
	h := students.NewHandler(store, zap.NewNop())
	return students.Routes(h), store
}

func TestHandleCreate(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]any{
		"id": "TP1", "name": "Aisha", "email": "aisha@t.edu",
		"intake": "2024-09", "programme": "CS", "cgpa": "3.85", "credits": 15,
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	var got models.StudentWithSubjects
	rec.DecodeJSON(t, &got)
	if got.ID != "TP1" || got.Credits != 15 {
		t.Errorf("created = %+v", got.Student)
	}
	if got.Subjects == nil || len(got.Subjects) != 0 {
		t.Errorf("Subjects = %v, want []", got.Subjects)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing id", map[string]any{"name": "A", "email": "a@t.edu"}},
		{"missing name", map[string]any{"id": "TP1", "email": "a@t.edu"}},
		{"missing email", map[string]any{"id": "TP1", "name": "A"}},
		{"negative credits", map[string]any{"id": "TP1", "name": "A", "email": "a@t.edu", "credits": -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store := newTestRouter(t)
			req := testutil.NewJSONRequest(t, "POST", "/", tt.body)
			rec := testutil.NewRecorder()
			router.ServeHTTP(rec, req)

			rec.AssertStatus(t, http.StatusBadRequest)
			if n, _ := store.Counts(); n != 0 {
				t.Errorf("store has %d students after rejected create", n)
			}
		})
	}
}

func TestHandleCreate_BadJSON(t *testing.T) {
	router, _ := newTestRouter(t)
	req := testutil.NewRequest("POST", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeView(t *testing.T) {
	router, store := newTestRouter(t)
	store.CreateStudent(testutil.NewStudentFixture("TP1"))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/TP1"))
	rec.AssertStatus(t, http.StatusOK)

	var got models.StudentWithSubjects
	rec.DecodeJSON(t, &got)
	if got.ID != "TP1" {
		t.Errorf("ID = %q, want TP1", got.ID)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/missing"))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeList(t *testing.T) {
	router, store := newTestRouter(t)
	a := testutil.NewStudentFixture("TP1")
	a.Intake = "2024-09"
	store.CreateStudent(a)
	b := testutil.NewStudentFixture("TP2")
	b.Intake = "2025-01"
	store.CreateStudent(b)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/"))
	rec.AssertStatus(t, http.StatusOK)
	var all []models.StudentWithSubjects
	rec.DecodeJSON(t, &all)
	if len(all) != 2 {
		t.Errorf("len(all) = %d, want 2", len(all))
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/?intake=2025-01"))
	var filtered []models.StudentWithSubjects
	rec.DecodeJSON(t, &filtered)
	if len(filtered) != 1 || filtered[0].ID != "TP2" {
		t.Errorf("filtered = %v, want [TP2]", filtered)
	}
}

func TestServeList_EmailLookup(t *testing.T) {
	router, store := newTestRouter(t)
	store.CreateStudent(testutil.NewStudentFixture("TP1"))

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/?email=TP1@test.edu"))
	rec.AssertStatus(t, http.StatusOK)
	var got models.StudentWithSubjects
	rec.DecodeJSON(t, &got)
	if got.ID != "TP1" {
		t.Errorf("ID = %q, want TP1", got.ID)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/?email=nobody@test.edu"))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleUpdate(t *testing.T) {
	router, store := newTestRouter(t)
	created := store.CreateStudent(testutil.NewStudentFixture("TP1"))

	req := testutil.NewJSONRequest(t, "PATCH", "/TP1", map[string]any{"cgpa": "3.95"})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var got models.StudentWithSubjects
	rec.DecodeJSON(t, &got)
	if got.CGPA != "3.95" {
		t.Errorf("CGPA = %q, want 3.95", got.CGPA)
	}
	if got.Name != created.Name {
		t.Error("untouched field changed under partial update")
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed under update")
	}
}

func TestHandleUpdate_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	req := testutil.NewJSONRequest(t, "PATCH", "/missing", map[string]any{"name": "X"})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleDelete(t *testing.T) {
	router, store := newTestRouter(t)
	store.CreateStudent(testutil.NewStudentFixture("TP1"))
	store.CreateSubject(recordstore.NewSubject{
		Code: "CS101", Name: "Programming", Status: "pass",
		StudentID: testutil.StrPtr("TP1"),
	})

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("DELETE", "/TP1"))
	rec.AssertStatus(t, http.StatusNoContent)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("DELETE", "/TP1"))
	rec.AssertStatus(t, http.StatusNotFound)

	// Subjects survive the delete and stay retrievable.
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/TP1/subjects"))
	rec.AssertStatus(t, http.StatusOK)
	var subs []models.Subject
	rec.DecodeJSON(t, &subs)
	if len(subs) != 1 || subs[0].Code != "CS101" {
		t.Errorf("subjects after delete = %v, want [CS101]", subs)
	}
}
