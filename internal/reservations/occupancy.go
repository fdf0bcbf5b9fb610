package reservations

// ReservedUnitsForDate returns the set of unit IDs taken on a date.
// Every reservation for the date counts, regardless of status: a
// cancelled reservation still holds its units until an admin deletes it.
func ReservedUnitsForDate(list []Reservation, date string) map[string]bool {
	occupied := make(map[string]bool)
	for _, r := range list {
		if r.Date != date {
			continue
		}
		for _, unit := range r.Units {
			occupied[unit] = true
		}
	}
	return occupied
}

// CountForDate returns how many reservations exist for a date
func CountForDate(list []Reservation, date string) int {
	n := 0
	for _, r := range list {
		if r.Date == date {
			n++
		}
	}
	return n
}
