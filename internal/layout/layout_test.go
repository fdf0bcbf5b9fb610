package layout

import (
	"testing"

	"seatwise/internal/settings"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUnitsIndividualRowMajor(t *testing.T) {
	seats := settings.SeatSettings{
		Mode:        settings.ModeIndividualSeats,
		Rows:        2,
		SeatsPerRow: 3,
	}

	units := GenerateUnits(seats)

	ids := make([]string, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, ids)
	assert.Equal(t, "A", units[0].Row)
	assert.Equal(t, 1, units[0].Number)
}

func TestGenerateUnitsGroupedSlots(t *testing.T) {
	seats := settings.SeatSettings{
		Mode:          settings.ModeGroupedSlots,
		GroupCount:    2,
		SlotsPerGroup: 2,
	}

	units := GenerateUnits(seats)

	ids := make([]string, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	assert.Equal(t, []string{"G1-S1", "G1-S2", "G2-S1", "G2-S2"}, ids)
	assert.Equal(t, 2, units[3].Group)
	assert.Equal(t, 2, units[3].Slot)
}

func TestRowLabelBeyondAlphabet(t *testing.T) {
	assert.Equal(t, "A", RowLabel(0))
	assert.Equal(t, "Z", RowLabel(25))
	assert.Equal(t, "AA", RowLabel(26))
	assert.Equal(t, "AB", RowLabel(27))
	assert.Equal(t, "BA", RowLabel(52))
}

func TestUnitIndex(t *testing.T) {
	seats := settings.SeatSettings{
		Mode:        settings.ModeIndividualSeats,
		Rows:        1,
		SeatsPerRow: 2,
	}

	idx := UnitIndex(GenerateUnits(seats))
	assert.Equal(t, 0, idx["A1"])
	assert.Equal(t, 1, idx["A2"])
	_, ok := idx["B1"]
	assert.False(t, ok)
}

func TestPreviewRowsCapped(t *testing.T) {
	assert.Equal(t, 8, PreviewRows(settings.SeatSettings{Rows: 8}))
	assert.Equal(t, MaxPreviewRows, PreviewRows(settings.SeatSettings{Rows: 40}))
}
