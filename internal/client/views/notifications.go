package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"golang.org/x/sync/errgroup"
)

type NotificationFilter string

const (
	FilterAll    NotificationFilter = "all"
	FilterUnread NotificationFilter = "unread"
	FilterRead   NotificationFilter = "read"
)

// ParseNotificationFilter accepts all, unread and read; anything else is
// an error.
func ParseNotificationFilter(s string) (NotificationFilter, error) {
	switch f := NotificationFilter(s); f {
	case FilterAll, FilterUnread, FilterRead:
		return f, nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("unknown notification filter %q", s)
}

type NotificationsAPI interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type Notifications struct {
	api NotificationsAPI
	log logging.Logger
	loader

	Items  []models.Notification
	Filter NotificationFilter
}

func NewNotifications(api NotificationsAPI, log logging.Logger) *Notifications {
	return &Notifications{api: api, log: log.With("view", "notifications"), Filter: FilterAll}
}

func (v *Notifications) Load(ctx context.Context) error {
	defer v.begin()()

	items, err := v.api.Notifications(ctx)
	if err != nil {
		v.log.Warn(ctx, "notifications load failed", "err", err)
		return err
	}
	v.Items = items
	return nil
}

func (v *Notifications) Visible() []models.Notification {
	return FilterNotifications(v.Items, v.Filter)
}

func (v *Notifications) UnreadCount() int { return UnreadCount(v.Items) }

func FilterNotifications(items []models.Notification, f NotificationFilter) []models.Notification {
	if f == FilterAll || f == "" {
		return items
	}
	out := make([]models.Notification, 0, len(items))
	for _, n := range items {
		if n.IsRead == (f == FilterRead) {
			out = append(out, n)
		}
	}
	return out
}

func UnreadCount(items []models.Notification) int {
	c := 0
	for _, n := range items {
		if !n.IsRead {
			c++
		}
	}
	return c
}

func (v *Notifications) MarkRead(ctx context.Context, id int64) error {
	if err := v.api.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

// MarkAllRead marks every loaded unread notification in parallel, then
// re-fetches whatever the outcome.
func (v *Notifications) MarkAllRead(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, n := range FilterNotifications(v.Items, FilterUnread) {
		n := n
		g.Go(func() error {
			return v.api.MarkNotificationRead(gctx, n.ID)
		})
	}
	err := g.Wait()

	_ = v.Load(ctx)

	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
