package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsThenRemoves(t *testing.T) {
	s := NewService()

	s.Toggle("R1")
	assert.True(t, s.IsSelected("R1"))
	assert.Equal(t, 1, s.Count())

	s.Toggle("R1")
	assert.False(t, s.IsSelected("R1"))
	assert.Equal(t, 0, s.Count())
}

func TestTogglePairLeavesSelectionUnchanged(t *testing.T) {
	ids := []string{"", "R1", "R2", "MDEwOlJlcG9zaXRvcnkxMjM=", "R1"}

	for _, start := range [][]string{nil, {"R1"}, {"R1", "R2", "X"}} {
		s := NewService()
		s.SelectAll(start)
		before := s.Selected()

		for _, id := range ids {
			s.Toggle(id)
			s.Toggle(id)
			assert.Equal(t, before, s.Selected(), "toggle twice on %q from %v", id, start)
		}
	}
}

func TestSelectingIDsOutsideTheCollection(t *testing.T) {
	s := NewService()

	s.Toggle("R1")
	s.Toggle("R2")

	assert.Equal(t, []string{"R1", "R2"}, s.Selected())
}

func TestSelectAllAndClear(t *testing.T) {
	s := NewService()
	s.SelectAll([]string{"b", "a"})
	assert.Equal(t, []string{"a", "b"}, s.Selected())

	s.Clear()
	assert.Empty(t, s.Selected())
}

func TestPruneDropsStaleIDs(t *testing.T) {
	s := NewService()
	s.SelectAll([]string{"R1", "R2", "R3"})

	removed := s.Prune(map[string]bool{"R2": true})

	assert.Equal(t, []string{"R1", "R3"}, removed)
	assert.Equal(t, []string{"R2"}, s.Selected())
}
