package reservations

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

var csvHeader = []string{
	"Reservation Number", "Date", "First Name", "Last Name", "Email", "Phone",
	"Units", "Total", "Status", "Notes", "Booked At", "Confirmed At",
}

// ExportCSV renders the reservation list as a semicolon-separated CSV
// with a trailing statistics block, ready for spreadsheet import.
func ExportCSV(list []Reservation, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range list {
		confirmed := ""
		if r.ConfirmedAt != nil {
			confirmed = r.ConfirmedAt.Format(time.RFC3339)
		}

		record := []string{
			r.Number,
			r.Date,
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			strings.Join(r.Units, ", "),
			r.Total,
			string(r.Status),
			r.Notes,
			r.CreatedAt.Format(time.RFC3339),
			confirmed,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	// Statistics block appended below the data
	var confirmed, pending, cancelled int
	var revenue float64
	for _, r := range list {
		switch r.Status {
		case StatusConfirmed:
			confirmed++
		case StatusPending:
			pending++
		case StatusCancelled:
			cancelled++
		}
		revenue += parseAmount(r.Total)
	}

	stats := [][]string{
		{},
		{"=== STATISTICS ==="},
		{"Total Reservations", fmt.Sprintf("%d", len(list))},
		{"Confirmed", fmt.Sprintf("%d", confirmed)},
		{"Pending", fmt.Sprintf("%d", pending)},
		{"Cancelled", fmt.Sprintf("%d", cancelled)},
		{"Total Revenue", fmt.Sprintf("%.2f", revenue)},
		{"Exported At", now.Format(time.RFC3339)},
	}
	for _, record := range stats {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv statistics: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
