package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleAndOrder(t *testing.T) {
	s := New()
	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	require.Equal(t, []string{"b", "a", "c"}, s.IDs())
	require.True(t, s.Has("a"))

	s.Toggle("a")
	require.False(t, s.Has("a"))
	require.Equal(t, []string{"b", "c"}, s.IDs())
	require.Equal(t, 2, s.Len())
}

func TestAddIsIdempotent(t *testing.T) {
	s := New()
	s.Add("x")
	s.Add("x")
	require.Equal(t, []string{"x"}, s.IDs())
}

func TestToggleAll(t *testing.T) {
	s := New()

	s.ToggleAll([]string{"a", "b"})
	require.Equal(t, []string{"a", "b"}, s.IDs())

	// partially selected: toggling again over a superset selects the rest
	s.Remove("b")
	s.ToggleAll([]string{"a", "b", "c"})
	require.Equal(t, []string{"a", "b", "c"}, s.IDs())

	// fully selected: toggling deselects all of them
	s.ToggleAll([]string{"a", "b", "c"})
	require.Zero(t, s.Len())
}

func TestToggleAllEmptyInput(t *testing.T) {
	s := New()
	s.Add("keep")
	s.ToggleAll(nil)
	require.Equal(t, []string{"keep"}, s.IDs())
}

func TestClear(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	s.Clear()
	require.Zero(t, s.Len())
	require.Empty(t, s.IDs())
	require.False(t, s.Has("a"))
}

func TestSelectionSurvivesUnrelatedIDs(t *testing.T) {
	// selection is not intersected with any visible set; ids stay selected
	// until explicitly removed or cleared
	s := New()
	s.Add("hidden-by-filter")
	s.ToggleAll([]string{"visible-1", "visible-2"})
	require.Equal(t, []string{"hidden-by-filter", "visible-1", "visible-2"}, s.IDs())
}

func TestIDsReturnsCopy(t *testing.T) {
	s := New()
	s.Add("a")
	ids := s.IDs()
	ids[0] = "mutated"
	require.Equal(t, []string{"a"}, s.IDs())
}
