// Package export builds printable report documents from already-filtered
// record lists. Rendering to a final format (PDF in production) is the
// renderer's business; the core only assembles the title, timestamp, record
// count, and table rows.
package export

import (
	"time"

	"svcadmin/internal/models"
)

// Document is the export contract handed to a Renderer.
type Document struct {
	Title        string
	GeneratedAt  time.Time
	TotalRecords int
	Header       []string
	Rows         [][]string
}

// Renderer turns a Document into its final representation.
type Renderer interface {
	Render(doc Document) error
}

// notAvailable is the placeholder for blank fields in report rows.
const notAvailable = "N/A"

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func dateOrNA(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format("2006-01-02")
}

// SvcReport assembles the SVC management report over the given (already
// filtered) records.
func SvcReport(svcs []models.Svc, generatedAt time.Time) Document {
	doc := Document{
		Title:        "SVC Management Report",
		GeneratedAt:  generatedAt,
		TotalRecords: len(svcs),
		Header:       []string{"SVC Number", "Rank", "Police Station", "Status", "Created Date"},
	}

	for _, s := range svcs {
		status := "Inactive"
		if s.IsActive {
			status = "Active"
		}
		doc.Rows = append(doc.Rows, []string{
			s.OfficerSVC,
			orNA(s.OfficerRank),
			orNA(s.PoliceStation),
			status,
			dateOrNA(s.CreatedAt),
		})
	}
	return doc
}

// UserReport assembles the user management report.
func UserReport(users []models.User, generatedAt time.Time) Document {
	doc := Document{
		Title:        "User Management Report",
		GeneratedAt:  generatedAt,
		TotalRecords: len(users),
		Header:       []string{"Full Name", "SVC Number", "Rank", "Police Station", "Email", "Phone", "Created Date"},
	}

	for _, u := range users {
		doc.Rows = append(doc.Rows, []string{
			orNA(u.FullName),
			orNA(u.OfficerSVC),
			orNA(u.OfficerRank),
			orNA(u.PoliceStation),
			orNA(u.Email),
			orNA(u.Phone),
			dateOrNA(u.CreatedAt),
		})
	}
	return doc
}
