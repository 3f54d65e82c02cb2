package views

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"golang.org/x/sync/errgroup"
)

type ProjectDetailAPI interface {
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	Milestones(ctx context.Context, projectID int64) ([]models.Milestone, error)
	Comments(ctx context.Context, projectID int64) ([]models.Comment, error)
	MyPairingRequests(ctx context.Context) ([]models.PairingRequest, error)
	CreatePairingRequest(ctx context.Context, projectID int64, message string) (*models.PairingRequest, error)
	CreateMilestone(ctx context.Context, projectID int64, in models.MilestoneInput) (*models.Milestone, error)
	UpdateMilestone(ctx context.Context, id int64, upd models.MilestoneUpdate) (*models.Milestone, error)
	DeleteMilestone(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, projectID int64, content string) (*models.Comment, error)
}

// ProjectDetail is one project with its milestones and comments.
//
// A Load error wrapping client.ErrNotFound means the project is gone and
// the caller should go back to the listing.
type ProjectDetail struct {
	api     ProjectDetailAPI
	session Session
	log     logging.Logger
	id      int64
	loader

	Project    *models.Project
	Milestones []models.Milestone
	Comments   []models.Comment

	hasRequested bool
}

func NewProjectDetail(id int64, api ProjectDetailAPI, session Session, log logging.Logger) *ProjectDetail {
	return &ProjectDetail{
		api:     api,
		session: session,
		log:     log.With("view", "project", "project_id", id),
		id:      id,
	}
}

func (v *ProjectDetail) ID() int64 { return v.id }

// Load fetches project, milestones and comments in parallel. When someone
// is logged in it also looks through their sent requests for this
// project; that lookup failing is logged and otherwise ignored.
func (v *ProjectDetail) Load(ctx context.Context) error {
	defer v.begin()()

	var (
		project    *models.Project
		milestones []models.Milestone
		comments   []models.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		project, err = v.api.GetProject(gctx, v.id)
		return err
	})
	g.Go(func() (err error) {
		milestones, err = v.api.Milestones(gctx, v.id)
		return err
	})
	g.Go(func() (err error) {
		comments, err = v.api.Comments(gctx, v.id)
		return err
	})

	if err := g.Wait(); err != nil {
		v.log.Warn(ctx, "project load failed", "err", err)
		return err
	}

	v.Project, v.Milestones, v.Comments = project, milestones, comments

	if v.session.State().User != nil {
		sent, err := v.api.MyPairingRequests(ctx)
		if err != nil {
			v.log.Warn(ctx, "pairing request lookup failed", "err", err)
			return nil
		}
		v.hasRequested = false
		for _, r := range sent {
			if r.ProjectID == v.id {
				v.hasRequested = true
				break
			}
		}
	}
	return nil
}

// IsOwner reports whether the logged-in user owns the project.
func (v *ProjectDetail) IsOwner() bool {
	u := v.session.State().User
	return u != nil && v.Project != nil && v.Project.OwnerID == u.ID
}

// IsCollaborator is true for the owner and for listed collaborators.
func (v *ProjectDetail) IsCollaborator() bool {
	if v.IsOwner() {
		return true
	}
	u := v.session.State().User
	if u == nil || v.Project == nil {
		return false
	}
	for _, c := range v.Project.Collaborators {
		if c.UserID == u.ID {
			return true
		}
	}
	return false
}

// HasRequested reports whether the caller already sent a pairing request
// for this project.
func (v *ProjectDetail) HasRequested() bool { return v.hasRequested }

// CanRequest is true for a logged-in non-collaborator without a request.
func (v *ProjectDetail) CanRequest() bool {
	return v.session.State().User != nil && !v.IsCollaborator() && !v.hasRequested
}

// Progress returns the rounded percentage of completed milestones. ok is
// false when there are no milestones.
func (v *ProjectDetail) Progress() (pct int, ok bool) {
	return MilestoneProgress(v.Milestones)
}

// MilestoneProgress is round(100 * completed / total).
func MilestoneProgress(ms []models.Milestone) (int, bool) {
	if len(ms) == 0 {
		return 0, false
	}
	done := 0
	for _, m := range ms {
		if m.IsCompleted {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(ms)) * 100)), true
}

func (v *ProjectDetail) RequestPairing(ctx context.Context, form validation.PairingRequestForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.CreatePairingRequest(ctx, v.id, form.Message); err != nil {
		return fmt.Errorf("send pairing request: %w", err)
	}
	v.hasRequested = true
	_ = v.Load(ctx)
	return nil
}

func (v *ProjectDetail) AddMilestone(ctx context.Context, form validation.MilestoneForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.CreateMilestone(ctx, v.id, form.Input()); err != nil {
		return fmt.Errorf("create milestone: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

// ToggleMilestone flips the completion of milestone id as last loaded.
func (v *ProjectDetail) ToggleMilestone(ctx context.Context, id int64) error {
	var current *models.Milestone
	for i := range v.Milestones {
		if v.Milestones[i].ID == id {
			current = &v.Milestones[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("milestone %d is not part of this project", id)
	}

	next := !current.IsCompleted
	if _, err := v.api.UpdateMilestone(ctx, id, models.MilestoneUpdate{IsCompleted: &next}); err != nil {
		return fmt.Errorf("update milestone: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

func (v *ProjectDetail) DeleteMilestone(ctx context.Context, id int64) error {
	if err := v.api.DeleteMilestone(ctx, id); err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

func (v *ProjectDetail) AddComment(ctx context.Context, form validation.CommentForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.CreateComment(ctx, v.id, form.Content); err != nil {
		return fmt.Errorf("post comment: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}
