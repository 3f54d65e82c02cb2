package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
)

// ProjectPairingRequests returns the first page of requests received by a
// project. Only the owner may call it.
func (c *HTTPClient) ProjectPairingRequests(ctx context.Context, projectID int64) ([]models.PairingRequest, error) {
	var page models.PairingRequestPage
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/pairing-requests", projectID), nil, &page); err != nil {
		return nil, err
	}
	return page.Requests, nil
}

// MyPairingRequests returns the requests sent by the current user.
func (c *HTTPClient) MyPairingRequests(ctx context.Context) ([]models.PairingRequest, error) {
	var reqs []models.PairingRequest
	if err := c.get(ctx, "/api/users/me/pairing-requests", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *HTTPClient) CreatePairingRequest(ctx context.Context, projectID int64, message string) (*models.PairingRequest, error) {
	var r models.PairingRequest
	body := map[string]string{"message": message}
	if err := c.post(ctx, fmt.Sprintf("/api/projects/%d/pairing-requests", projectID), body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// RespondPairingRequest approves or rejects a received request.
func (c *HTTPClient) RespondPairingRequest(ctx context.Context, id int64, resp models.PairingRequestResponse) (*models.PairingRequest, error) {
	var r models.PairingRequest
	if err := c.put(ctx, fmt.Sprintf("/api/pairing-requests/%d", id), resp, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) PairingSessions(ctx context.Context) ([]models.PairingSession, error) {
	var ss []models.PairingSession
	if err := c.get(ctx, "/api/pairing-sessions", nil, &ss); err != nil {
		return nil, err
	}
	return ss, nil
}

func (c *HTTPClient) CreatePairingSession(ctx context.Context, in models.PairingSessionInput) (*models.PairingSession, error) {
	var s models.PairingSession
	if err := c.post(ctx, "/api/pairing-sessions", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
