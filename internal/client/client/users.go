package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
)

// UpdateMe applies a partial profile update and returns the server's
// representation of the user.
func (c *HTTPClient) UpdateMe(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.put(ctx, "/api/users/me", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	var u models.User
	if err := c.post(ctx, "/api/users", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	var u models.User
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

func (c *HTTPClient) UserSkills(ctx context.Context, userID int64) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d/skills", userID), nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// Skills returns the skill catalogue.
func (c *HTTPClient) Skills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := c.get(ctx, "/api/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (c *HTTPClient) AddUserSkill(ctx context.Context, in models.UserSkillInput) error {
	return c.post(ctx, "/api/user-skills", in, nil)
}

func (c *HTTPClient) RemoveUserSkill(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/user-skills/%d", id))
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var s models.DashboardStats
	if err := c.get(ctx, "/api/dashboard/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
