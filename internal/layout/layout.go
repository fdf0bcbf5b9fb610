// Package layout derives the bookable units of the seating area from the
// stored seat settings. A unit is either one seat (individual mode) or one
// slot at a group (grouped mode).
package layout

import (
	"fmt"

	"seatwise/internal/settings"
)

// MaxPreviewRows caps how many rows the admin layout preview renders.
// It is display-only and never limits booking.
const MaxPreviewRows = 10

// Unit is one bookable position in the seating area
type Unit struct {
	ID     string `json:"id"`
	Row    string `json:"row,omitempty"`
	Number int    `json:"number,omitempty"`
	Group  int    `json:"group,omitempty"`
	Slot   int    `json:"slot,omitempty"`
}

// GenerateUnits produces every bookable unit in canonical order.
// Individual mode is row-major: A1, A2, ..., B1, B2, ...
// Grouped mode is group-major: G1-S1, G1-S2, ..., G2-S1, ...
func GenerateUnits(seats settings.SeatSettings) []Unit {
	if seats.Mode == settings.ModeGroupedSlots {
		units := make([]Unit, 0, seats.GroupCount*seats.SlotsPerGroup)
		for g := 1; g <= seats.GroupCount; g++ {
			for s := 1; s <= seats.SlotsPerGroup; s++ {
				units = append(units, Unit{
					ID:    fmt.Sprintf("G%d-S%d", g, s),
					Group: g,
					Slot:  s,
				})
			}
		}
		return units
	}

	units := make([]Unit, 0, seats.Rows*seats.SeatsPerRow)
	for r := 0; r < seats.Rows; r++ {
		row := RowLabel(r)
		for n := 1; n <= seats.SeatsPerRow; n++ {
			units = append(units, Unit{
				ID:     fmt.Sprintf("%s%d", row, n),
				Row:    row,
				Number: n,
			})
		}
	}
	return units
}

// UnitIndex maps unit IDs to their position in canonical order
func UnitIndex(units []Unit) map[string]int {
	idx := make(map[string]int, len(units))
	for i, u := range units {
		idx[u.ID] = i
	}
	return idx
}

// RowLabel converts a zero-based row index to its letter label:
// 0..25 -> A..Z, 26 -> AA, 27 -> AB, and so on.
func RowLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

// PreviewRows returns how many rows the admin preview should draw
func PreviewRows(seats settings.SeatSettings) int {
	if seats.Rows > MaxPreviewRows {
		return MaxPreviewRows
	}
	return seats.Rows
}
