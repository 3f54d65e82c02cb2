package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/views"
	"github.com/dustin/go-humanize/english"
)

func (a *App) Notifications(ctx context.Context, args []string) error {
	filter := views.FilterAll
	if len(args) > 0 {
		f, err := views.ParseNotificationFilter(args[0])
		if err != nil {
			return err
		}
		filter = f
	}

	v := views.NewNotifications(a.api, a.log)
	v.Filter = filter
	if err := v.Load(ctx); err != nil {
		return err
	}
	a.renderNotifications(v)
	return nil
}

func (a *App) renderNotifications(v *views.Notifications) {
	unread := v.UnreadCount()
	a.heading(fmt.Sprintf("Notifications: all (%d), unread (%d), read (%d)",
		len(v.Items), unread, len(v.Items)-unread))

	items := v.Visible()
	if len(items) == 0 {
		switch v.Filter {
		case views.FilterUnread:
			fmt.Fprintln(a.out, "You're all caught up!")
		case views.FilterRead:
			fmt.Fprintln(a.out, "No read notifications.")
		default:
			fmt.Fprintln(a.out, "No notifications yet.")
		}
		return
	}
	a.renderNotificationRows(items)
	fmt.Fprintf(a.out, "Total: %s\n", english.Plural(len(v.Items), "notification", ""))
}

func (a *App) Read(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "read <id>")
	if err != nil {
		return err
	}
	v := views.NewNotifications(a.api, a.log)
	if err := v.MarkRead(ctx, id); err != nil {
		return err
	}
	a.renderNotifications(v)
	return nil
}

func (a *App) ReadAll(ctx context.Context, _ []string) error {
	v := views.NewNotifications(a.api, a.log)
	if err := v.Load(ctx); err != nil {
		return err
	}
	if v.UnreadCount() == 0 {
		fmt.Fprintln(a.out, "Nothing to mark.")
		return nil
	}
	if err := v.MarkAllRead(ctx); err != nil {
		return err
	}
	a.renderNotifications(v)
	return nil
}
