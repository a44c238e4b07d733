// internal/app/features/students/types.go
package students

// createRequest is the JSON body for POST /students. The transport layer is
// responsible for shape validation; the store trusts what it receives.
type createRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Intake    string `json:"intake"`
	Programme string `json:"programme"`
	CGPA      string `json:"cgpa"`
	Credits   int    `json:"credits"`
}

// updateRequest is the JSON body for PATCH /students/{id}. Absent fields are
// left untouched on the stored record.
type updateRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Intake    *string `json:"intake"`
	Programme *string `json:"programme"`
	CGPA      *string `json:"cgpa"`
	Credits   *int    `json:"credits"`
}

type errorResponse struct {
	Error string `json:"error"`
}
