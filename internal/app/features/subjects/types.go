// internal/app/features/subjects/types.go
package subjects

// createRequest is the JSON body for POST /subjects. Grade and StudentID are
// optional; when absent they stay absent on the stored record. StudentID is
// not checked against existing students — the linkage is a plain
// foreign-key match resolved at read time.
type createRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Grade     *string `json:"grade"`
	StudentID *string `json:"student_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}
