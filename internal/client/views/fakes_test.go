package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/services"
)

// fakeAPI implements every view API. Calls may arrive concurrently.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	Stats            *models.DashboardStats
	StatsErr         error
	MyProjectsRet    []models.Project
	MyProjectsErr    error
	NotificationsRet []models.Notification
	NotificationsErr error
	MarkReadErr      map[int64]error
	MarkedRead       []int64

	Page      *models.ProjectPage
	ListErr   error
	LastQuery models.ProjectQuery

	Project       *models.Project
	ProjectErr    error
	MilestonesRet []models.Milestone
	CommentsRet   []models.Comment
	SentRet       []models.PairingRequest
	SentErr       error
	ReceivedRet   map[int64][]models.PairingRequest
	ReceivedErr   map[int64]error

	LastRequestMessage string
	LastMilestoneInput models.MilestoneInput
	LastMilestoneID    int64
	LastMilestoneUpd   models.MilestoneUpdate
	DeletedMilestone   int64
	LastComment        string
	MutationErr        error

	LastProjectInput models.ProjectInput
	LastProjectID    int64
	DeletedProject   int64

	LastRespondID int64
	LastResponse  models.PairingRequestResponse

	UserSkillsRet []models.UserSkill
	SkillsRet     []models.Skill
	LastSkill     models.UserSkillInput
	RemovedSkill  int64

	UsersRet      []models.User
	LastUserInput models.UserInput
	LastUserID    int64
	DeletedUser   int64

	SessionsRet      []models.PairingSession
	LastSessionInput models.PairingSessionInput
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	f.record("DashboardStats")
	return f.Stats, f.StatsErr
}

func (f *fakeAPI) MyProjects(ctx context.Context) ([]models.Project, error) {
	f.record("MyProjects")
	return f.MyProjectsRet, f.MyProjectsErr
}

func (f *fakeAPI) Notifications(ctx context.Context) ([]models.Notification, error) {
	f.record("Notifications")
	return f.NotificationsRet, f.NotificationsErr
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id int64) error {
	f.record("MarkNotificationRead")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MarkedRead = append(f.MarkedRead, id)
	return f.MarkReadErr[id]
}

func (f *fakeAPI) ListProjects(ctx context.Context, q models.ProjectQuery) (*models.ProjectPage, error) {
	f.record("ListProjects")
	f.LastQuery = q
	return f.Page, f.ListErr
}

func (f *fakeAPI) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	f.record("GetProject")
	return f.Project, f.ProjectErr
}

func (f *fakeAPI) Milestones(ctx context.Context, projectID int64) ([]models.Milestone, error) {
	f.record("Milestones")
	return f.MilestonesRet, nil
}

func (f *fakeAPI) Comments(ctx context.Context, projectID int64) ([]models.Comment, error) {
	f.record("Comments")
	return f.CommentsRet, nil
}

func (f *fakeAPI) MyPairingRequests(ctx context.Context) ([]models.PairingRequest, error) {
	f.record("MyPairingRequests")
	return f.SentRet, f.SentErr
}

func (f *fakeAPI) ProjectPairingRequests(ctx context.Context, projectID int64) ([]models.PairingRequest, error) {
	f.record("ProjectPairingRequests")
	return f.ReceivedRet[projectID], f.ReceivedErr[projectID]
}

func (f *fakeAPI) CreatePairingRequest(ctx context.Context, projectID int64, message string) (*models.PairingRequest, error) {
	f.record("CreatePairingRequest")
	f.LastRequestMessage = message
	return &models.PairingRequest{ProjectID: projectID, Message: message}, f.MutationErr
}

func (f *fakeAPI) RespondPairingRequest(ctx context.Context, id int64, resp models.PairingRequestResponse) (*models.PairingRequest, error) {
	f.record("RespondPairingRequest")
	f.LastRespondID, f.LastResponse = id, resp
	return &models.PairingRequest{ID: id, Status: resp.Status}, f.MutationErr
}

func (f *fakeAPI) CreateMilestone(ctx context.Context, projectID int64, in models.MilestoneInput) (*models.Milestone, error) {
	f.record("CreateMilestone")
	f.LastMilestoneInput = in
	return &models.Milestone{ProjectID: projectID, Title: in.Title}, f.MutationErr
}

func (f *fakeAPI) UpdateMilestone(ctx context.Context, id int64, upd models.MilestoneUpdate) (*models.Milestone, error) {
	f.record("UpdateMilestone")
	f.LastMilestoneID, f.LastMilestoneUpd = id, upd
	return &models.Milestone{ID: id}, f.MutationErr
}

func (f *fakeAPI) DeleteMilestone(ctx context.Context, id int64) error {
	f.record("DeleteMilestone")
	f.DeletedMilestone = id
	return f.MutationErr
}

func (f *fakeAPI) CreateComment(ctx context.Context, projectID int64, content string) (*models.Comment, error) {
	f.record("CreateComment")
	f.LastComment = content
	return &models.Comment{ProjectID: projectID, Content: content}, f.MutationErr
}

func (f *fakeAPI) CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	f.record("CreateProject")
	f.LastProjectInput = in
	return &models.Project{Title: in.Title}, f.MutationErr
}

func (f *fakeAPI) UpdateProject(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	f.record("UpdateProject")
	f.LastProjectID, f.LastProjectInput = id, in
	return &models.Project{ID: id, Title: in.Title}, f.MutationErr
}

func (f *fakeAPI) DeleteProject(ctx context.Context, id int64) error {
	f.record("DeleteProject")
	f.DeletedProject = id
	return f.MutationErr
}

func (f *fakeAPI) UserSkills(ctx context.Context, userID int64) ([]models.UserSkill, error) {
	f.record("UserSkills")
	return f.UserSkillsRet, nil
}

func (f *fakeAPI) Skills(ctx context.Context) ([]models.Skill, error) {
	f.record("Skills")
	return f.SkillsRet, nil
}

func (f *fakeAPI) AddUserSkill(ctx context.Context, in models.UserSkillInput) error {
	f.record("AddUserSkill")
	f.LastSkill = in
	return f.MutationErr
}

func (f *fakeAPI) RemoveUserSkill(ctx context.Context, id int64) error {
	f.record("RemoveUserSkill")
	f.RemovedSkill = id
	return f.MutationErr
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	f.record("ListUsers")
	return f.UsersRet, nil
}

func (f *fakeAPI) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	f.record("CreateUser")
	f.LastUserInput = in
	return &models.User{Username: in.Username}, f.MutationErr
}

func (f *fakeAPI) UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	f.record("UpdateUser")
	f.LastUserID, f.LastUserInput = id, in
	return &models.User{ID: id}, f.MutationErr
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id int64) error {
	f.record("DeleteUser")
	f.DeletedUser = id
	return f.MutationErr
}

func (f *fakeAPI) PairingSessions(ctx context.Context) ([]models.PairingSession, error) {
	f.record("PairingSessions")
	return f.SessionsRet, nil
}

func (f *fakeAPI) CreatePairingSession(ctx context.Context, in models.PairingSessionInput) (*models.PairingSession, error) {
	f.record("CreatePairingSession")
	f.LastSessionInput = in
	return &models.PairingSession{UserID: in.UserID}, f.MutationErr
}

type fakeSession struct {
	user      *models.User
	updated   *models.ProfileUpdate
	updateErr error
}

func (s *fakeSession) State() services.State { return services.State{User: s.user} }

func (s *fakeSession) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	s.updated = &upd
	return s.updateErr
}
