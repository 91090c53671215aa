package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"svcadmin/internal/export"
	"svcadmin/internal/models"
)

func (a *App) svcCommand(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "list":
		a.svcList()
	case "refresh":
		if err := a.svcs.Load(ctx); err == nil {
			a.svcList()
		}
	case "search":
		a.svcs.SetQuery(strings.Join(args, " "))
		a.svcList()
	case "clear":
		a.svcs.SetQuery("")
		a.svcList()
	case "check":
		if len(args) == 0 {
			printlnFn("Usage: check <id>")
			return true
		}
		a.svcs.Selection().Toggle(args[0])
	case "checkall":
		a.svcs.Selection().ToggleAll(svcIDs(a.svcs.Visible()))
	case "add":
		a.svcAdd(ctx)
	case "bulkadd":
		a.svcBulkAdd(ctx)
	case "edit":
		if len(args) == 0 {
			printlnFn("Usage: edit <id>")
			return true
		}
		a.svcEdit(ctx, args[0])
	case "del":
		if len(args) == 0 {
			printlnFn("Usage: del <id>")
			return true
		}
		if err := a.svcs.Delete(ctx, args[0]); err == nil {
			a.svcList()
		}
	case "bulkdel":
		if err := a.svcs.BulkDelete(ctx); err == nil {
			a.svcList()
		}
	case "toggle":
		if len(args) == 0 {
			printlnFn("Usage: toggle <id>")
			return true
		}
		if err := a.svcs.ToggleStatus(ctx, args[0]); err == nil {
			a.svcList()
		}
	case "export":
		a.svcExport(args)
	default:
		return false
	}
	return true
}

func (a *App) svcList() {
	renderSvcs(a.out, a.svcs.Visible(), a.svcs.Selection())
}

// svcPrompt collects one candidate record interactively. Rank and station
// come from the fixed option lists, so only the credential number can fail
// validation later.
func (a *App) svcPrompt() (models.SvcInput, error) {
	var in models.SvcInput

	number, err := getSimpleText(a.reader, "Enter SVC number (e.g. SVC001)", a.out)
	if err != nil {
		return in, err
	}
	rank, err := SelectOption(a.reader, "Select officer rank", models.Ranks, a.out)
	if err != nil {
		return in, err
	}
	station, err := SelectOption(a.reader, "Select police station", models.Stations, a.out)
	if err != nil {
		return in, err
	}

	in.OfficerSVC = number
	in.OfficerRank = rank
	in.PoliceStation = station
	return in, nil
}

func (a *App) svcAdd(ctx context.Context) {
	in, err := a.svcPrompt()
	if err != nil {
		a.notify.Error(err.Error())
		return
	}
	if err := a.svcs.Create(ctx, in); err == nil {
		a.svcList()
	}
}

// svcBulkAdd collects candidates until the user enters a blank credential
// number, then submits them as one batch.
func (a *App) svcBulkAdd(ctx context.Context) {
	var inputs []models.SvcInput

	for {
		number, err := getSimpleText(a.reader, "Enter SVC number (blank to finish)", a.out)
		if err != nil {
			a.notify.Error(err.Error())
			return
		}
		if number == "" {
			break
		}
		rank, err := SelectOption(a.reader, "Select officer rank", models.Ranks, a.out)
		if err != nil {
			a.notify.Error(err.Error())
			return
		}
		station, err := SelectOption(a.reader, "Select police station", models.Stations, a.out)
		if err != nil {
			a.notify.Error(err.Error())
			return
		}
		inputs = append(inputs, models.SvcInput{
			OfficerSVC:    number,
			OfficerRank:   rank,
			PoliceStation: station,
		})
	}

	if len(inputs) == 0 {
		a.notify.Warning("No SVCs entered")
		return
	}
	if closed, _ := a.svcs.BulkCreate(ctx, inputs); closed {
		a.svcList()
	}
}

func (a *App) svcEdit(ctx context.Context, id string) {
	in, err := a.svcPrompt()
	if err != nil {
		a.notify.Error(err.Error())
		return
	}
	if err := a.svcs.Update(ctx, id, in); err == nil {
		a.svcList()
	}
}

// svcExport writes the filtered view as a CSV report. The optional argument
// names the output file.
func (a *App) svcExport(args []string) {
	path := "svc-report.csv"
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Create(path)
	if err != nil {
		a.notify.Error("Failed to create report file")
		return
	}
	defer f.Close()

	doc := export.SvcReport(a.svcs.Visible(), time.Now())
	if err := (export.CSVRenderer{W: f}).Render(doc); err != nil {
		a.notify.Error("Failed to write report")
		return
	}
	a.notify.Success("Report generated successfully")
	printlnFn("Saved to " + path)
}

func svcIDs(svcs []models.Svc) []string {
	ids := make([]string, len(svcs))
	for i, s := range svcs {
		ids[i] = s.ID
	}
	return ids
}
