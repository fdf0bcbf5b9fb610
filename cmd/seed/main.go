// Seeds the document store with default settings and a handful of
// sample reservations for local development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"seatwise/internal/notifications"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.GetDefault()

	store, err := storage.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open document store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	settingsService := settings.NewService(settings.NewRepository(store, log))
	reservationService := reservations.NewService(
		reservations.NewRepository(store, log),
		notifications.NewNoopProducer(),
		log,
	)

	// Loading settings on a fresh store persists the defaults
	cfgDoc, err := settingsService.Get(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed settings: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("settings ready (event %q, mode %s)\n", cfgDoc.General.EventName, cfgDoc.Seats.Mode)

	existing, err := reservationService.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list reservations: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Printf("store already has %d reservations, skipping sample data\n", len(existing))
		return
	}

	nextMonday := nextWeekday(time.Now().UTC(), time.Monday).Format(settings.DateLayout)
	nextTuesday := nextWeekday(time.Now().UTC(), time.Tuesday).Format(settings.DateLayout)

	samples := []reservations.CommitRequest{
		{
			Date: nextMonday, Units: []string{"A1", "A2"},
			FirstName: "Maria", LastName: "Schmidt", Email: "maria@example.com",
			Phone: "+49 170 0000001", Total: "free",
		},
		{
			Date: nextMonday, Units: []string{"C5"},
			FirstName: "Jonas", LastName: "Weber", Email: "jonas@example.com",
			Notes: "aisle seat please", Total: "free",
		},
		{
			Date: nextTuesday, Units: []string{"B3", "B4", "B5"},
			FirstName: "Lena", LastName: "Fischer", Email: "lena@example.com",
			Total: "free",
		},
	}

	for _, sample := range samples {
		r, err := reservationService.Commit(ctx, sample)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed reservation: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("created %s for %s (%d units)\n", r.Number, r.Date, len(r.Units))
		// Reservation numbers derive from the commit timestamp
		time.Sleep(5 * time.Millisecond)
	}

	fmt.Println("seed complete")
}

// nextWeekday returns the next occurrence of the given weekday, at
// least one day ahead
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
