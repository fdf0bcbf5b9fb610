package reservations

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"seatwise/internal/notifications"
	"seatwise/pkg/logger"
)

// CommitRequest carries the data needed to create a reservation
type CommitRequest struct {
	Date      string
	Units     []string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
	Total     string
}

type Service interface {
	// Commit creates a pending reservation and returns it
	Commit(ctx context.Context, req CommitRequest) (*Reservation, error)
	List(ctx context.Context) ([]Reservation, error)
	Get(ctx context.Context, number string) (*Reservation, error)
	UpdateStatus(ctx context.Context, number string, target Status) (*Reservation, error)
	Delete(ctx context.Context, number string) error
	DeleteAll(ctx context.Context) error
	Stats(ctx context.Context, today time.Time) (*Stats, error)
}

type service struct {
	repo     Repository
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository, producer notifications.Producer, log *logger.Logger) Service {
	return &service{repo: repo, producer: producer, log: log}
}

// NewNumber derives a reservation number from the commit instant: the
// RSV- prefix plus the last 8 digits of the unix-millisecond timestamp.
// Two commits in the same millisecond would collide; with a single
// booking widget in front of this store that has never been observed.
func NewNumber(at time.Time) string {
	millis := strconv.FormatInt(at.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "RSV-" + millis
}

func (s *service) Commit(ctx context.Context, req CommitRequest) (*Reservation, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("reservation date is required")
	}
	if len(req.Units) == 0 {
		return nil, fmt.Errorf("reservation needs at least one unit")
	}

	now := time.Now().UTC()
	reservation := Reservation{
		Number:    NewNumber(now),
		Date:      req.Date,
		Units:     req.Units,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Notes:     req.Notes,
		Total:     req.Total,
		Status:    StatusPending,
		CreatedAt: now,
	}

	if err := s.repo.Append(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.LogReservationCreated(ctx, reservation.Number, reservation.Date, len(reservation.Units))
	s.publish(ctx, notifications.EventReservationCreated, &reservation, "")

	return &reservation, nil
}

func (s *service) List(ctx context.Context) ([]Reservation, error) {
	return s.repo.All(ctx)
}

func (s *service) Get(ctx context.Context, number string) (*Reservation, error) {
	list, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Number == number {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("reservation %s not found", number)
}

func (s *service) UpdateStatus(ctx context.Context, number string, target Status) (*Reservation, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("invalid status %q", target)
	}

	list, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Number != number {
			continue
		}

		current := list[i].Status
		if !current.CanTransitionTo(target) {
			return nil, fmt.Errorf("cannot change reservation %s from %s to %s", number, current, target)
		}

		list[i].Status = target
		if target == StatusConfirmed {
			now := time.Now().UTC()
			list[i].ConfirmedAt = &now
		}

		if err := s.repo.ReplaceAll(ctx, list); err != nil {
			return nil, err
		}

		s.log.LogReservationStatusChanged(ctx, number, string(current), string(target))
		s.publish(ctx, notifications.EventReservationStatusChanged, &list[i], string(current))

		return &list[i], nil
	}

	return nil, fmt.Errorf("reservation %s not found", number)
}

func (s *service) Delete(ctx context.Context, number string) error {
	list, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].Number != number {
			continue
		}

		deleted := list[i]
		list = append(list[:i], list[i+1:]...)
		if err := s.repo.ReplaceAll(ctx, list); err != nil {
			return err
		}

		s.publish(ctx, notifications.EventReservationDeleted, &deleted, "")
		return nil
	}

	return fmt.Errorf("reservation %s not found", number)
}

func (s *service) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// Stats aggregates the list for the dashboard. Revenue sums every priced
// total regardless of status, mirroring how the export reports it.
func (s *service) Stats(ctx context.Context, today time.Time) (*Stats, error) {
	list, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(list)}
	upcoming := make(map[string]bool)
	todayStr := today.Format("2006-01-02")

	for _, r := range list {
		switch r.Status {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCancelled:
			stats.Cancelled++
		}

		stats.UnitsBooked += len(r.Units)
		stats.Revenue += parseAmount(r.Total)

		if r.Date >= todayStr {
			upcoming[r.Date] = true
		}
	}

	stats.UpcomingDays = len(upcoming)
	return stats, nil
}

func (s *service) publish(ctx context.Context, eventType notifications.EventType, r *Reservation, previousStatus string) {
	event := notifications.NewEvent(eventType, r.Number)
	event.Date = r.Date
	event.Units = r.Units
	event.Email = r.Email
	event.NewStatus = string(r.Status)
	event.PreviousStatus = previousStatus

	// Fire-and-forget: a broker outage must never block a booking
	if err := s.producer.Publish(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish reservation event", err, map[string]interface{}{
			"reservation_number": r.Number,
			"event_type":         string(eventType),
		})
	}
}

// parseAmount extracts the numeric value from a formatted total like
// "€25.00". Free totals contribute nothing.
func parseAmount(total string) float64 {
	trimmed := strings.TrimSpace(total)
	if trimmed == "" || strings.EqualFold(trimmed, "free") {
		return 0
	}

	start := strings.IndexFunc(trimmed, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if start < 0 {
		return 0
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(trimmed[start:], ",", "."), 64)
	if err != nil {
		return 0
	}
	return amount
}
