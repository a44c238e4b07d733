// internal/app/features/students/list.go
package students

import (
	"errors"
	"net/http"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /students.
//
// Without params it returns every student (insertion order). `?intake=` narrows
// to an exact cohort match; `?email=` looks up a single student instead and
// returns 404 when no email matches.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if email := query.Get(r, "email"); email != "" {
		st, err := h.Records.GetStudentByEmail(email)
		if err != nil {
			if errors.Is(err, recordstore.ErrNotFound) {
				respondError(w, http.StatusNotFound, "student not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		respondJSON(w, http.StatusOK, st)
		return
	}

	if intake := query.Get(r, "intake"); intake != "" {
		respondJSON(w, http.StatusOK, h.Records.StudentsByIntake(intake))
		return
	}

	respondJSON(w, http.StatusOK, h.Records.AllStudents())
}
