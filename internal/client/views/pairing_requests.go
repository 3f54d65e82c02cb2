package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"golang.org/x/sync/errgroup"
)

type PairingRequestsAPI interface {
	MyPairingRequests(ctx context.Context) ([]models.PairingRequest, error)
	MyProjects(ctx context.Context) ([]models.Project, error)
	ProjectPairingRequests(ctx context.Context, projectID int64) ([]models.PairingRequest, error)
	RespondPairingRequest(ctx context.Context, id int64, resp models.PairingRequestResponse) (*models.PairingRequest, error)
}

// PairingRequests shows the requests the caller sent and the ones
// received on projects they own.
type PairingRequests struct {
	api PairingRequestsAPI
	log logging.Logger
	loader

	Sent     []models.PairingRequest
	Received []models.PairingRequest

	// Status filters by request status, empty for all. Search matches the
	// project title, requester username and message.
	Status string
	Search string
}

func NewPairingRequests(api PairingRequestsAPI, log logging.Logger) *PairingRequests {
	return &PairingRequests{api: api, log: log.With("view", "pairing-requests")}
}

// Load fetches sent and received requests in parallel. Received requests
// are gathered project by project; a project whose requests cannot be read
// is logged and skipped.
func (v *PairingRequests) Load(ctx context.Context) error {
	defer v.begin()()

	var sent, received []models.PairingRequest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sent, err = v.api.MyPairingRequests(gctx)
		return err
	})
	g.Go(func() (err error) {
		received, err = v.received(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		v.log.Warn(ctx, "pairing requests load failed", "err", err)
		return err
	}

	v.Sent, v.Received = sent, received
	return nil
}

func (v *PairingRequests) received(ctx context.Context) ([]models.PairingRequest, error) {
	projects, err := v.api.MyProjects(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.PairingRequest
	for _, p := range projects {
		reqs, err := v.api.ProjectPairingRequests(ctx, p.ID)
		if err != nil {
			v.log.Warn(ctx, "project pairing requests failed", "project_id", p.ID, "err", err)
			continue
		}
		for _, r := range reqs {
			r.ProjectTitle = p.Title
			out = append(out, r)
		}
	}
	return out, nil
}

func (v *PairingRequests) VisibleSent() []models.PairingRequest {
	return FilterPairingRequests(v.Sent, v.Status, v.Search)
}

func (v *PairingRequests) VisibleReceived() []models.PairingRequest {
	return FilterPairingRequests(v.Received, v.Status, v.Search)
}

// FilterPairingRequests applies a status filter (empty keeps all) and a
// case-insensitive search.
func FilterPairingRequests(reqs []models.PairingRequest, status, search string) []models.PairingRequest {
	search = strings.ToLower(search)

	out := make([]models.PairingRequest, 0, len(reqs))
	for _, r := range reqs {
		if status != "" && r.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Title()), search) &&
			!strings.Contains(strings.ToLower(r.RequesterName()), search) &&
			!strings.Contains(strings.ToLower(r.Message), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Respond approves or rejects a received request.
func (v *PairingRequests) Respond(ctx context.Context, id int64, status, message string) error {
	if status != models.RequestApproved && status != models.RequestRejected {
		return validation.Errors{"status": "Status must be approved or rejected"}
	}
	resp := models.PairingRequestResponse{Status: status, ResponseMessage: message}
	if _, err := v.api.RespondPairingRequest(ctx, id, resp); err != nil {
		return fmt.Errorf("respond to pairing request: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}
