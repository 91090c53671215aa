package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"svcadmin/internal/models"
	"svcadmin/internal/report"
	"svcadmin/internal/selection"
)

func checkMark(sel *selection.Set, id string) string {
	if sel.Has(id) {
		return "[x]"
	}
	return "[ ]"
}

func renderSvcs(w io.Writer, svcs []models.Svc, sel *selection.Set) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEL\tID\tSVC NUMBER\tRANK\tSTATION\tSTATUS\tCREATED")
	for _, s := range svcs {
		status := "Inactive"
		if s.IsActive {
			status = "Active"
		}
		created := ""
		if !s.CreatedAt.IsZero() {
			created = s.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			checkMark(sel, s.ID), s.ID, s.OfficerSVC, s.OfficerRank, s.PoliceStation, status, created)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d records, %d selected\n", len(svcs), sel.Len())
}

func renderUsers(w io.Writer, users []models.User, sel *selection.Set) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEL\tID\tNAME\tSVC\tRANK\tSTATION\tEMAIL\tPHONE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			checkMark(sel, u.ID), u.ID, u.FullName, u.OfficerSVC, u.OfficerRank, u.PoliceStation, u.Email, u.Phone)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d records, %d selected\n", len(users), sel.Len())
}

func renderSnapshot(w io.Writer, snap report.Snapshot) {
	fmt.Fprintf(w, "Users: %d  SVCs: %d (%d active, %d inactive)\n",
		snap.TotalUsers, snap.TotalSvcs, snap.ActiveSvcs, snap.InactiveSvcs)

	if len(snap.RecentUsers) > 0 {
		fmt.Fprintln(w, "\nRecent users:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, u := range snap.RecentUsers {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", u.FullName, u.OfficerSVC, u.PoliceStation)
		}
		tw.Flush()
	}

	if len(snap.RecentSvcs) > 0 {
		fmt.Fprintln(w, "\nRecent SVCs:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range snap.RecentSvcs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.OfficerSVC, s.OfficerRank, s.PoliceStation)
		}
		tw.Flush()
	}

	if len(snap.UsersByStation) > 0 {
		fmt.Fprintln(w, "\nUsers by station:")
		for _, p := range snap.UsersByStation {
			fmt.Fprintf(w, "  %-28s %d\n", p.Name, p.Count)
		}
	}

	if len(snap.SvcsByRank) > 0 {
		fmt.Fprintln(w, "\nSVCs by rank:")
		for _, p := range snap.SvcsByRank {
			fmt.Fprintf(w, "  %-28s %d\n", p.Name, p.Count)
		}
	}

	fmt.Fprintln(w, "\nRegistrations by month:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  MONTH\tUSERS\tSVCS")
	for _, b := range snap.Monthly {
		fmt.Fprintf(tw, "  %s\t%d\t%d\n", b.Month, b.Users, b.Svcs)
	}
	tw.Flush()
}
