package booking

import "errors"

// Selection tracking errors surfaced to the customer as notices
var (
	ErrNoActiveDate  = errors.New("no date selected")
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrUnitOccupied  = errors.New("unit is already reserved")
	ErrSelectionFull = errors.New("selection limit reached")
)

// Selection is the in-progress booking state of one visitor session
type Selection struct {
	Date  string   `json:"date"`
	Units []string `json:"units"`
}

// SelectDate switches the active date. Re-selecting the current date is
// a no-op; switching to another date discards the unit selection.
func (s *Selection) SelectDate(date string) {
	if s.Date == date {
		return
	}
	s.Date = date
	s.Units = nil
}

// Toggle adds or removes a unit. valid holds every unit ID of the current
// layout, occupied the units already reserved for the selected date, and
// maxUnits the per-booking cap.
func (s *Selection) Toggle(unitID string, valid map[string]int, occupied map[string]bool, maxUnits int) error {
	if s.Date == "" {
		return ErrNoActiveDate
	}
	if _, ok := valid[unitID]; !ok {
		return ErrUnknownUnit
	}

	for i, id := range s.Units {
		if id == unitID {
			s.Units = append(s.Units[:i], s.Units[i+1:]...)
			return nil
		}
	}

	if occupied[unitID] {
		return ErrUnitOccupied
	}
	if maxUnits > 0 && len(s.Units) >= maxUnits {
		return ErrSelectionFull
	}

	s.Units = append(s.Units, unitID)
	return nil
}

// Has reports whether a unit is currently selected
func (s *Selection) Has(unitID string) bool {
	for _, id := range s.Units {
		if id == unitID {
			return true
		}
	}
	return false
}
