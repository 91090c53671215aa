package services

import (
	"context"
	"sync"
	"time"

	"svcadmin/internal/api"
	"svcadmin/internal/logging"
	"svcadmin/internal/models"
	"svcadmin/internal/report"
)

// Dashboard feeds the aggregator. It reads both collections fresh on every
// refresh and never mutates anything.
type Dashboard struct {
	api    api.Client
	notify Notifier
	log    logging.Logger
}

func NewDashboard(client api.Client, notify Notifier, log logging.Logger) *Dashboard {
	return &Dashboard{api: client, notify: notify, log: log.With("page", "dashboard")}
}

// Refresh fetches users and SVCs concurrently and aggregates them once both
// arrive. If either fetch fails the aggregation is skipped entirely: one
// load-failure notification is raised and the zero-valued snapshot is
// returned for the view to render.
func (d *Dashboard) Refresh(ctx context.Context, now time.Time) (report.Snapshot, error) {
	var (
		users []models.User
		svcs  []models.Svc
		uErr  error
		sErr  error
		wg    sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, uErr = d.api.ListUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		svcs, sErr = d.api.ListSvcs(ctx)
	}()
	wg.Wait()

	if uErr != nil || sErr != nil {
		d.notify.Error("Failed to load dashboard data")
		if uErr != nil {
			return report.Snapshot{}, uErr
		}
		return report.Snapshot{}, sErr
	}

	d.log.Debug(ctx, "dashboard refreshed", "users", len(users), "svcs", len(svcs))
	return report.Summarize(users, svcs, now), nil
}
