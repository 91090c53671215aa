package cli

import (
	"context"
	"time"
)

// switchPage makes p current and gives it a fresh load. Load failures have
// already been surfaced through the notifier; the page simply stays empty.
func (a *App) switchPage(ctx context.Context, p Page) {
	a.current = p
	switch p {
	case PageDashboard:
		a.showDashboard(ctx)
	case PageSvcs:
		if err := a.svcs.Load(ctx); err == nil {
			a.svcList()
		}
	case PageUsers:
		if err := a.users.Load(ctx); err == nil {
			a.userList()
		}
	}
}

// HandlePageCommand routes cmd to the current page. It reports whether the
// command was recognized.
func (a *App) HandlePageCommand(ctx context.Context, cmd string, args []string) bool {
	switch a.current {
	case PageDashboard:
		return a.dashboardCommand(ctx, cmd)
	case PageSvcs:
		return a.svcCommand(ctx, cmd, args)
	case PageUsers:
		return a.userCommand(ctx, cmd, args)
	}
	return false
}

func (a *App) dashboardCommand(ctx context.Context, cmd string) bool {
	if cmd != "refresh" {
		return false
	}
	a.showDashboard(ctx)
	return true
}

func (a *App) showDashboard(ctx context.Context) {
	snap, err := a.dashboard.Refresh(ctx, time.Now())
	if err != nil {
		return
	}
	renderSnapshot(a.out, snap)
}
