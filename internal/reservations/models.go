package reservations

import "time"

// Status is the lifecycle state of a reservation
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the status state machine: only pending
// reservations move, and only to confirmed or cancelled.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && (target == StatusConfirmed || target == StatusCancelled)
}

// Reservation is one committed booking. Units holds seat IDs in
// individual mode and group-slot IDs in grouped mode.
type Reservation struct {
	Number      string     `json:"reservationNumber"`
	Date        string     `json:"date"`
	Units       []string   `json:"units"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Total       string     `json:"total"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"timestamp"`
	ConfirmedAt *time.Time `json:"confirmedTimestamp,omitempty"`
}

// Stats summarizes the reservation list for the admin dashboard
type Stats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Cancelled    int     `json:"cancelled"`
	Revenue      float64 `json:"revenue"`
	UnitsBooked  int     `json:"unitsBooked"`
	UpcomingDays int     `json:"upcomingDays"`
}
