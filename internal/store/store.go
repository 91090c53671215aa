// Package store holds the last-fetched full collection for one entity type.
// A Store is exclusively owned by the manager that issued the fetch; the
// aggregator and filter only ever read from it.
package store

// Store keeps one in-memory record collection. Replace-all is the only
// write: there is no incremental patching, every mutation is followed by a
// fresh full fetch upstream.
type Store[T any] struct {
	records []T
}

func New[T any]() *Store[T] {
	return &Store[T]{}
}

// ReplaceAll swaps the whole collection for the given one. Later fetches win
// unconditionally (last-write-wins, no ordering guarantee between two
// in-flight refreshes of the same entity type).
func (s *Store[T]) ReplaceAll(records []T) {
	s.records = records
}

// All returns the current collection. Callers must not mutate it; derive
// filtered or aggregated views instead.
func (s *Store[T]) All() []T {
	return s.records
}

func (s *Store[T]) Len() int {
	return len(s.records)
}
