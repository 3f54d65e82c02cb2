package models

// Pairing request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type PairingRequest struct {
	ID              int64    `json:"id"`
	Message         string   `json:"message"`
	Status          string   `json:"status"`
	ResponseMessage string   `json:"response_message"`
	RequesterID     int64    `json:"requester_id"`
	ProjectID       int64    `json:"project_id"`
	Requester       *User    `json:"requester,omitempty"`
	Project         *Project `json:"project,omitempty"`
	ProjectTitle    string   `json:"project_title,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// Title returns the project title from the nested project or, for
// requests aggregated per project, from ProjectTitle.
func (r PairingRequest) Title() string {
	if r.Project != nil && r.Project.Title != "" {
		return r.Project.Title
	}
	return r.ProjectTitle
}

// RequesterName returns the requester's username, or "" when absent.
func (r PairingRequest) RequesterName() string {
	if r.Requester == nil {
		return ""
	}
	return r.Requester.Username
}

// PairingRequestPage is one page of a project's received requests.
type PairingRequestPage struct {
	Requests    []PairingRequest `json:"requests"`
	Total       int              `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}

type PairingRequestResponse struct {
	Status          string `json:"status"`
	ResponseMessage string `json:"response_message,omitempty"`
}

// PairingSession is a scheduled or completed pairing session.
type PairingSession struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	ProjectID       int64  `json:"project_id"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	DurationMinutes int    `json:"duration_minutes"`
	Rating          int    `json:"rating"`
	CreatedAt       string `json:"created_at"`
}

type PairingSessionInput struct {
	UserID          int64  `json:"user_id"`
	ProjectID       int64  `json:"project_id"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Rating          int    `json:"rating,omitempty"`
}
