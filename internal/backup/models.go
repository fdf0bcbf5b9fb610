package backup

import (
	"time"

	"seatwise/internal/admin"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
)

// SnapshotVersion is written into every export and checked on import
const SnapshotVersion = "1.0"

// Snapshot is a complete copy of the persisted system state
type Snapshot struct {
	Settings     *settings.Settings         `json:"settings"`
	Reservations []reservations.Reservation `json:"reservations"`
	LoginHistory []admin.LoginRecord        `json:"loginHistory"`
	Timestamp    time.Time                  `json:"timestamp"`
	Version      string                     `json:"version"`
}

// SettingsSnapshot is the settings-only export
type SettingsSnapshot struct {
	Settings  *settings.Settings `json:"settings"`
	Timestamp time.Time          `json:"timestamp"`
	Version   string             `json:"version"`
}
