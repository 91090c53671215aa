// Package report derives dashboard statistics from the user and SVC
// collections. Everything here is pure: no I/O, no clock reads. Callers
// pass the reference time.
package report

import (
	"sort"
	"time"

	"svcadmin/internal/models"
)

// recentLimit caps the most-recently-created lists.
const recentLimit = 5

// stationLimit caps the station distribution; the rank distribution is
// reported in full.
const stationLimit = 8

// monthWindow is the number of calendar-month buckets in the time series,
// ending at (and including) the current month.
const monthWindow = 6

// unknownGroup labels records whose station or rank is missing.
const unknownGroup = "Unknown"

// StatPoint is one (group label, record count) pair.
type StatPoint struct {
	Name  string
	Count int
}

// MonthBucket counts the users and SVCs created in one calendar month.
type MonthBucket struct {
	Month string
	Users int
	Svcs  int
}

// Snapshot is the derived dashboard view. It is recomputed on demand and
// never persisted; the zero value is what the dashboard shows when a source
// fetch failed.
type Snapshot struct {
	TotalUsers     int
	TotalSvcs      int
	ActiveSvcs     int
	InactiveSvcs   int
	RecentUsers    []models.User
	RecentSvcs     []models.Svc
	UsersByStation []StatPoint
	SvcsByRank     []StatPoint
	Monthly        []MonthBucket
}

// Summarize computes the dashboard snapshot from the full collections.
//
// Recency lists keep the input order for equal timestamps. Groupings are
// sorted by descending count; the order of equal counts is unspecified.
// The time series has exactly six buckets, oldest month first, current month
// last; records created outside the window fall into no bucket.
func Summarize(users []models.User, svcs []models.Svc, now time.Time) Snapshot {
	snap := Snapshot{
		TotalUsers: len(users),
		TotalSvcs:  len(svcs),
	}

	for _, s := range svcs {
		if s.IsActive {
			snap.ActiveSvcs++
		}
	}
	snap.InactiveSvcs = snap.TotalSvcs - snap.ActiveSvcs

	snap.RecentUsers = recentUsers(users)
	snap.RecentSvcs = recentSvcs(svcs)

	snap.UsersByStation = truncate(groupCounts(users, func(u models.User) string {
		return u.PoliceStation
	}), stationLimit)

	snap.SvcsByRank = groupCounts(svcs, func(s models.Svc) string {
		return s.OfficerRank
	})

	snap.Monthly = monthlySeries(users, svcs, now)

	return snap
}

func recentUsers(users []models.User) []models.User {
	sorted := make([]models.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

func recentSvcs(svcs []models.Svc) []models.Svc {
	sorted := make([]models.Svc, len(svcs))
	copy(sorted, svcs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

// groupCounts buckets records by key, substituting "Unknown" for blank keys,
// and returns the groups sorted by descending count.
func groupCounts[T any](records []T, key func(T) string) []StatPoint {
	counts := make(map[string]int)
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = unknownGroup
		}
		counts[k]++
	}

	out := make([]StatPoint, 0, len(counts))
	for name, count := range counts {
		out = append(out, StatPoint{Name: name, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func truncate(points []StatPoint, limit int) []StatPoint {
	if len(points) > limit {
		return points[:limit]
	}
	return points
}

func monthlySeries(users []models.User, svcs []models.Svc, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, monthWindow)

	for i := monthWindow - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		b := MonthBucket{Month: first.Format("Jan 2006")}

		for _, u := range users {
			if sameMonth(u.CreatedAt, first) {
				b.Users++
			}
		}
		for _, s := range svcs {
			if sameMonth(s.CreatedAt, first) {
				b.Svcs++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func sameMonth(t, ref time.Time) bool {
	return !t.IsZero() && t.Year() == ref.Year() && t.Month() == ref.Month()
}
