package models

// SubmissionStatus tracks where a stored submission sits in the promoter's
// follow-up workflow.
type SubmissionStatus string

const (
	StatusNew       SubmissionStatus = "new"
	StatusContacted SubmissionStatus = "contacted"
	StatusQuoted    SubmissionStatus = "quoted"
	StatusClosed    SubmissionStatus = "closed"
	StatusDeclined  SubmissionStatus = "declined"
)

// ValidSubmissionStatus reports whether raw is a known status value.
func ValidSubmissionStatus(raw string) bool {
	switch SubmissionStatus(raw) {
	case StatusNew, StatusContacted, StatusQuoted, StatusClosed, StatusDeclined:
		return true
	default:
		return false
	}
}

// AdminLoginRequest is the back-office login payload.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminSession describes the authenticated back-office user, returned after
// login and by the session check endpoint.
type AdminSession struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// StatusUpdateRequest advances a stored submission through the workflow.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
