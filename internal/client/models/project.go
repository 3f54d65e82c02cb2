package models

// Project is a listing as returned by /api/projects. Nested collections
// are only populated by the detail endpoint.
type Project struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	TechStack        string           `json:"tech_stack"`
	Tags             string           `json:"tags"`
	DifficultyLevel  string           `json:"difficulty_level"`
	Status           string           `json:"status"`
	RepositoryURL    string           `json:"repository_url"`
	DemoURL          string           `json:"demo_url"`
	IsPublic         bool             `json:"is_public"`
	MaxCollaborators int              `json:"max_collaborators"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
	OwnerID          int64            `json:"owner_id"`
	Owner            *User            `json:"owner,omitempty"`
	Collaborators    []Collaborator   `json:"collaborators,omitempty"`
	Milestones       []Milestone      `json:"milestones,omitempty"`
	PairingRequests  []PairingRequest `json:"pairing_requests,omitempty"`
	Comments         []Comment        `json:"comments,omitempty"`
}

func (p Project) TechList() []string { return SplitList(p.TechStack) }
func (p Project) TagList() []string  { return SplitList(p.Tags) }

type Collaborator struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	User   User   `json:"user"`
}

// ProjectInput is the create/update payload.
type ProjectInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	TechStack        string `json:"tech_stack"`
	Tags             string `json:"tags,omitempty"`
	DifficultyLevel  string `json:"difficulty_level"`
	Status           string `json:"status,omitempty"`
	RepositoryURL    string `json:"repository_url,omitempty"`
	DemoURL          string `json:"demo_url,omitempty"`
	IsPublic         bool   `json:"is_public"`
	MaxCollaborators int    `json:"max_collaborators"`
}

// ProjectQuery holds the server-side filters of the project listing.
// Zero values are not sent.
type ProjectQuery struct {
	Page       int
	PerPage    int
	Search     string
	Status     string
	Difficulty string
}

// ProjectPage is one page of the project listing.
type ProjectPage struct {
	Projects    []Project `json:"projects"`
	Total       int       `json:"total"`
	Pages       int       `json:"pages"`
	CurrentPage int       `json:"current_page"`
}

type Milestone struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
	DueDate     string `json:"due_date"`
	CompletedAt string `json:"completed_at"`
	CreatedAt   string `json:"created_at"`
	ProjectID   int64  `json:"project_id"`
}

type MilestoneInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// MilestoneUpdate is a partial milestone update.
type MilestoneUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

type Comment struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	IsEdited  bool   `json:"is_edited"`
	AuthorID  int64  `json:"author_id"`
	ProjectID int64  `json:"project_id"`
	Author    *User  `json:"author,omitempty"`
	CreatedAt string `json:"created_at"`
}

// DashboardStats is returned by /api/dashboard/stats.
type DashboardStats struct {
	OwnedProjects       int `json:"owned_projects"`
	CompletedProjects   int `json:"completed_projects"`
	Collaborations      int `json:"collaborations"`
	PendingRequests     int `json:"pending_requests"`
	ApprovedRequests    int `json:"approved_requests"`
	UnreadNotifications int `json:"unread_notifications"`
}
