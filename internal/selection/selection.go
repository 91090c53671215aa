// Package selection tracks the set of row identifiers checked for bulk
// actions on one record page.
//
// The set is deliberately not intersected with the currently filtered view:
// checking rows and then narrowing the search keeps earlier selections, and
// bulk operations act on every checked identifier regardless of visibility.
package selection

// Set is an insertion-ordered set of record identifiers.
type Set struct {
	order   []string
	members map[string]struct{}
}

func New() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Has reports whether id is currently selected.
func (s *Set) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Add selects id. Adding an already-selected id is a no-op.
func (s *Set) Add(id string) {
	if s.Has(id) {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// Remove deselects id if present.
func (s *Set) Remove(id string) {
	if !s.Has(id) {
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips the selection state of id.
func (s *Set) Toggle(id string) {
	if s.Has(id) {
		s.Remove(id)
	} else {
		s.Add(id)
	}
}

// ToggleAll selects every given id, unless all of them are already selected,
// in which case it deselects them all. This matches a header checkbox over
// the visible rows.
func (s *Set) ToggleAll(ids []string) {
	all := len(ids) > 0
	for _, id := range ids {
		if !s.Has(id) {
			all = false
			break
		}
	}
	for _, id := range ids {
		if all {
			s.Remove(id)
		} else {
			s.Add(id)
		}
	}
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = nil
	s.members = make(map[string]struct{})
}

// IDs returns the selected identifiers in the order they were first checked.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) Len() int {
	return len(s.order)
}
