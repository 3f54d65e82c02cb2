package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/views"
)

// Requests shows sent and received pairing requests. A leading "sent" or
// "received" limits the output to one tab.
func (a *App) Requests(ctx context.Context, args []string) error {
	opts, words := splitOptions(args)

	tab := ""
	if len(words) > 0 {
		tab = words[0]
		if tab != "sent" && tab != "received" {
			return usageError{"requests [sent|received] [status=..] [search=..]"}
		}
	}

	v := views.NewPairingRequests(a.api, a.log)
	v.Status, v.Search = opts["status"], opts["search"]
	if err := v.Load(ctx); err != nil {
		return err
	}

	if tab != "received" {
		a.renderRequests("Sent requests", v.VisibleSent())
	}
	if tab == "" {
		fmt.Fprintln(a.out)
	}
	if tab != "sent" {
		a.renderRequests("Received requests", v.VisibleReceived())
	}
	return nil
}

// Respond answers a received request: respond <id> approve|reject [message].
func (a *App) Respond(ctx context.Context, args []string) error {
	const usage = "respond <id> approve|reject [message]"
	id, err := argID(args, 0, usage)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return usageError{usage}
	}

	var status string
	switch args[1] {
	case "approve", models.RequestApproved:
		status = models.RequestApproved
	case "reject", models.RequestRejected:
		status = models.RequestRejected
	default:
		return usageError{usage}
	}

	v := views.NewPairingRequests(a.api, a.log)
	if err := v.Respond(ctx, id, status, strings.Join(args[2:], " ")); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request %d %s.\n", id, status)
	a.renderRequests("Received requests", v.VisibleReceived())
	return nil
}
