package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"svcadmin/internal/export"
	"svcadmin/internal/models"
)

func (a *App) userCommand(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "list":
		a.userList()
	case "refresh":
		if err := a.users.Load(ctx); err == nil {
			a.userList()
		}
	case "search":
		a.users.SetQuery(strings.Join(args, " "))
		a.userList()
	case "clear":
		a.users.SetQuery("")
		a.userList()
	case "check":
		if len(args) == 0 {
			printlnFn("Usage: check <id>")
			return true
		}
		a.users.Selection().Toggle(args[0])
	case "checkall":
		a.users.Selection().ToggleAll(userIDs(a.users.Visible()))
	case "del":
		if len(args) == 0 {
			printlnFn("Usage: del <id>")
			return true
		}
		if err := a.users.Delete(ctx, args[0]); err == nil {
			a.userList()
		}
	case "bulkdel":
		if err := a.users.BulkDelete(ctx); err == nil {
			a.userList()
		}
	case "export":
		a.userExport(args)
	default:
		return false
	}
	return true
}

func (a *App) userList() {
	renderUsers(a.out, a.users.Visible(), a.users.Selection())
}

func (a *App) userExport(args []string) {
	path := "user-report.csv"
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Create(path)
	if err != nil {
		a.notify.Error("Failed to create report file")
		return
	}
	defer f.Close()

	doc := export.UserReport(a.users.Visible(), time.Now())
	if err := (export.CSVRenderer{W: f}).Render(doc); err != nil {
		a.notify.Error("Failed to write report")
		return
	}
	a.notify.Success("Report generated successfully")
	printlnFn("Saved to " + path)
}

func userIDs(users []models.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
