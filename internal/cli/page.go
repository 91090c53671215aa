package cli

// Page identifies the console page that page-scoped commands act on. The set
// is closed; adding a page means touching every switch over it.
type Page int

const (
	PageDashboard Page = iota
	PageSvcs
	PageUsers
)

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "dashboard"
	case PageSvcs:
		return "svcs"
	case PageUsers:
		return "users"
	}
	return "unknown"
}
