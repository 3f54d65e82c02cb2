package cli

import (
	"context"

	"github.com/dmitrijs2005/devpair/internal/client/views"
)

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	d := views.NewDashboard(a.api, a.log)
	if err := d.Load(ctx); err != nil {
		return err
	}
	a.renderDashboard(d, a.auth.State().User)
	return nil
}
