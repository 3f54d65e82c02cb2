package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/devpair/internal/client/models"
)

// ListProjects returns one page of public projects filtered server-side.
func (c *HTTPClient) ListProjects(ctx context.Context, q models.ProjectQuery) (*models.ProjectPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}

	var page models.ProjectPage
	if err := c.get(ctx, "/api/projects", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := c.post(ctx, "/api/projects", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := c.put(ctx, fmt.Sprintf("/api/projects/%d", id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/projects/%d", id))
}

// MyProjects returns the projects owned by the current user.
func (c *HTTPClient) MyProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, "/api/users/me/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *HTTPClient) Milestones(ctx context.Context, projectID int64) ([]models.Milestone, error) {
	var ms []models.Milestone
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/milestones", projectID), nil, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (c *HTTPClient) CreateMilestone(ctx context.Context, projectID int64, in models.MilestoneInput) (*models.Milestone, error) {
	var m models.Milestone
	if err := c.post(ctx, fmt.Sprintf("/api/projects/%d/milestones", projectID), in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) UpdateMilestone(ctx context.Context, id int64, upd models.MilestoneUpdate) (*models.Milestone, error) {
	var m models.Milestone
	if err := c.put(ctx, fmt.Sprintf("/api/milestones/%d", id), upd, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) DeleteMilestone(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/milestones/%d", id))
}

func (c *HTTPClient) Comments(ctx context.Context, projectID int64) ([]models.Comment, error) {
	var cs []models.Comment
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/comments", projectID), nil, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, projectID int64, content string) (*models.Comment, error) {
	var cm models.Comment
	body := map[string]string{"content": content}
	if err := c.post(ctx, fmt.Sprintf("/api/projects/%d/comments", projectID), body, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}
