package views

import (
	"context"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardProjects      = 3
	dashboardNotifications = 5
)

type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	MyProjects(ctx context.Context) ([]models.Project, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
}

// Dashboard shows the caller's counters, most recent projects and
// notifications.
type Dashboard struct {
	api DashboardAPI
	log logging.Logger
	loader

	Stats         models.DashboardStats
	Projects      []models.Project
	Notifications []models.Notification
}

func NewDashboard(api DashboardAPI, log logging.Logger) *Dashboard {
	return &Dashboard{api: api, log: log.With("view", "dashboard")}
}

// Load fetches all three parts in parallel. If any fails nothing is
// replaced.
func (d *Dashboard) Load(ctx context.Context) error {
	defer d.begin()()

	var (
		stats         *models.DashboardStats
		projects      []models.Project
		notifications []models.Notification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = d.api.DashboardStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = d.api.MyProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = d.api.Notifications(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		d.log.Warn(ctx, "dashboard load failed", "err", err)
		return err
	}

	if stats != nil {
		d.Stats = *stats
	}
	d.Projects = head(projects, dashboardProjects)
	d.Notifications = head(notifications, dashboardNotifications)
	return nil
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
