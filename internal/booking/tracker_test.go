package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUnits(ids ...string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

func TestSelectDateClearsUnitsOnChange(t *testing.T) {
	s := &Selection{Date: "2026-07-01", Units: []string{"A1", "A2"}}

	s.SelectDate("2026-07-01")
	assert.Equal(t, []string{"A1", "A2"}, s.Units, "re-selecting the same date keeps the selection")

	s.SelectDate("2026-07-02")
	assert.Equal(t, "2026-07-02", s.Date)
	assert.Empty(t, s.Units)
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := &Selection{Date: "2026-07-01"}
	valid := validUnits("A1", "A2")

	require.NoError(t, s.Toggle("A1", valid, nil, 8))
	assert.True(t, s.Has("A1"))

	require.NoError(t, s.Toggle("A1", valid, nil, 8))
	assert.False(t, s.Has("A1"))
}

func TestToggleRequiresActiveDate(t *testing.T) {
	s := &Selection{}
	err := s.Toggle("A1", validUnits("A1"), nil, 8)
	assert.ErrorIs(t, err, ErrNoActiveDate)
}

func TestToggleRejectsUnknownUnit(t *testing.T) {
	s := &Selection{Date: "2026-07-01"}
	err := s.Toggle("Z99", validUnits("A1"), nil, 8)
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestToggleRejectsOccupiedUnit(t *testing.T) {
	s := &Selection{Date: "2026-07-01"}
	occupied := map[string]bool{"A1": true}

	err := s.Toggle("A1", validUnits("A1"), occupied, 8)
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestToggleDeselectingOccupiedSelectionWorks(t *testing.T) {
	// A unit already in the selection can always be removed, even if the
	// occupancy snapshot now lists it as taken.
	s := &Selection{Date: "2026-07-01", Units: []string{"A1"}}
	occupied := map[string]bool{"A1": true}

	require.NoError(t, s.Toggle("A1", validUnits("A1"), occupied, 8))
	assert.Empty(t, s.Units)
}

func TestToggleEnforcesCap(t *testing.T) {
	s := &Selection{Date: "2026-07-01", Units: []string{"A1", "A2"}}
	valid := validUnits("A1", "A2", "A3")

	err := s.Toggle("A3", valid, nil, 2)
	assert.ErrorIs(t, err, ErrSelectionFull)
}
