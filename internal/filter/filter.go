// Package filter implements the search filter shared by both record pages:
// a case-insensitive substring match over a fixed per-entity field list.
package filter

import (
	"strings"

	"svcadmin/internal/models"
)

// Fields extracts the searchable field values of one record. Missing fields
// should come back as empty strings, which simply never match.
type Fields[T any] func(record T) []string

// Apply returns the records whose searchable fields contain query as a
// case-insensitive substring. A blank query returns the input slice
// unchanged. The input is never mutated.
func Apply[T any](records []T, query string, fields Fields[T]) []T {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)

	var out []T
	for _, r := range records {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// SvcFields lists the searchable fields of an SVC record: credential number,
// rank, and station.
func SvcFields(s models.Svc) []string {
	return []string{s.OfficerSVC, s.OfficerRank, s.PoliceStation}
}

// UserFields lists the searchable fields of a user record.
func UserFields(u models.User) []string {
	return []string{u.FullName, u.OfficerSVC, u.OfficerRank, u.PoliceStation, u.Email, u.Phone}
}
