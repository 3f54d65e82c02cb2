package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
)

func (c *HTTPClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	var ns []models.Notification
	if err := c.get(ctx, "/api/users/me/notifications", nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.put(ctx, fmt.Sprintf("/api/notifications/%d/read", id), nil, nil)
}
