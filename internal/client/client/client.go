package client

import (
	"context"

	"github.com/dmitrijs2005/devpair/internal/client/models"
)

// Client is the full DevPair API surface. Consumers should depend on the
// narrower interfaces they declare themselves.
type Client interface {
	SetAccessToken(token string)
	ClearAccessToken()
	AccessToken() string

	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)

	UpdateMe(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UserSkills(ctx context.Context, userID int64) ([]models.UserSkill, error)
	Skills(ctx context.Context) ([]models.Skill, error)
	AddUserSkill(ctx context.Context, in models.UserSkillInput) error
	RemoveUserSkill(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	ListProjects(ctx context.Context, q models.ProjectQuery) (*models.ProjectPage, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	MyProjects(ctx context.Context) ([]models.Project, error)
	Milestones(ctx context.Context, projectID int64) ([]models.Milestone, error)
	CreateMilestone(ctx context.Context, projectID int64, in models.MilestoneInput) (*models.Milestone, error)
	UpdateMilestone(ctx context.Context, id int64, upd models.MilestoneUpdate) (*models.Milestone, error)
	DeleteMilestone(ctx context.Context, id int64) error
	Comments(ctx context.Context, projectID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, projectID int64, content string) (*models.Comment, error)

	ProjectPairingRequests(ctx context.Context, projectID int64) ([]models.PairingRequest, error)
	MyPairingRequests(ctx context.Context) ([]models.PairingRequest, error)
	CreatePairingRequest(ctx context.Context, projectID int64, message string) (*models.PairingRequest, error)
	RespondPairingRequest(ctx context.Context, id int64, resp models.PairingRequestResponse) (*models.PairingRequest, error)
	PairingSessions(ctx context.Context) ([]models.PairingSession, error)
	CreatePairingSession(ctx context.Context, in models.PairingSessionInput) (*models.PairingSession, error)

	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

var _ Client = (*HTTPClient)(nil)
