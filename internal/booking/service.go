package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seatwise/internal/availability"
	"seatwise/internal/layout"
	"seatwise/internal/pricing"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/pkg/logger"
)

// Booking flow errors surfaced to the customer as notices
var (
	ErrSystemInactive    = errors.New("booking system is currently disabled")
	ErrDateUnavailable   = errors.New("date is not available for booking")
	ErrTooFewUnits       = errors.New("selection is below the minimum booking size")
	ErrDailyLimitReached = errors.New("no more reservations possible for this date")
	ErrSelectionChanged  = errors.New("a selected unit was reserved by someone else")
)

// UnitView is one unit with its live booking state
type UnitView struct {
	layout.Unit
	Occupied bool `json:"occupied"`
	Selected bool `json:"selected"`
}

// Summary describes the current selection with its price
type Summary struct {
	Date     string        `json:"date"`
	Units    []string      `json:"units"`
	Total    pricing.Total `json:"total"`
	Display  string        `json:"display"`
	MinUnits int           `json:"minUnits"`
	MaxUnits int           `json:"maxUnits"`
}

// ConfirmRequest carries the contact data entered at checkout
type ConfirmRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
}

type Service interface {
	Config(ctx context.Context) (*settings.PublicSettings, error)
	Calendar(ctx context.Context, from, to time.Time) ([]string, error)
	Units(ctx context.Context, sessionID, date string) ([]UnitView, error)
	SelectDate(ctx context.Context, sessionID, date string) (*Selection, error)
	Toggle(ctx context.Context, sessionID, unitID string) (*Selection, error)
	Summary(ctx context.Context, sessionID string) (*Summary, error)
	Confirm(ctx context.Context, sessionID string, req ConfirmRequest) (*reservations.Reservation, error)
}

type service struct {
	settings     settings.Service
	reservations reservations.Service
	sessions     *SessionStore
	log          *logger.Logger
	now          func() time.Time
}

func NewService(settingsService settings.Service, reservationService reservations.Service, sessions *SessionStore, log *logger.Logger) Service {
	return &service{
		settings:     settingsService,
		reservations: reservationService,
		sessions:     sessions,
		log:          log,
		now:          time.Now,
	}
}

func (s *service) Config(ctx context.Context) (*settings.PublicSettings, error) {
	return s.settings.GetPublic(ctx)
}

func (s *service) Calendar(ctx context.Context, from, to time.Time) ([]string, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	dates := availability.AvailableDatesBetween(from, to, s.now(), cfg.Dates)
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

func (s *service) Units(ctx context.Context, sessionID, date string) ([]UnitView, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := availability.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !availability.IsDateAvailable(parsed, s.now(), cfg.Dates) {
		return nil, ErrDateUnavailable
	}

	occupied, err := s.occupiedUnits(ctx, date)
	if err != nil {
		return nil, err
	}

	selection := &Selection{}
	if sessionID != "" {
		selection, err = s.sessions.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}

	units := layout.GenerateUnits(cfg.Seats)
	views := make([]UnitView, len(units))
	for i, u := range units {
		views[i] = UnitView{
			Unit:     u,
			Occupied: occupied[u.ID],
			Selected: selection.Date == date && selection.Has(u.ID),
		}
	}
	return views, nil
}

func (s *service) SelectDate(ctx context.Context, sessionID, date string) (*Selection, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.General.SystemActive {
		return nil, ErrSystemInactive
	}

	parsed, err := availability.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !availability.IsDateAvailable(parsed, s.now(), cfg.Dates) {
		return nil, ErrDateUnavailable
	}

	selection, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	selection.SelectDate(date)
	if err := s.sessions.Save(ctx, sessionID, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

func (s *service) Toggle(ctx context.Context, sessionID, unitID string) (*Selection, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.General.SystemActive {
		return nil, ErrSystemInactive
	}

	selection, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if selection.Date == "" {
		return nil, ErrNoActiveDate
	}

	occupied, err := s.occupiedUnits(ctx, selection.Date)
	if err != nil {
		return nil, err
	}

	valid := layout.UnitIndex(layout.GenerateUnits(cfg.Seats))
	if err := selection.Toggle(unitID, valid, occupied, cfg.Seats.MaxSeatsPerBooking); err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	selection, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	total := pricing.ComputeTotal(selection.Units, cfg.Seats, cfg.Prices)
	units := selection.Units
	if units == nil {
		units = []string{}
	}

	return &Summary{
		Date:     selection.Date,
		Units:    units,
		Total:    total,
		Display:  total.Format(),
		MinUnits: cfg.Seats.MinSeatsPerBooking,
		MaxUnits: cfg.Seats.MaxSeatsPerBooking,
	}, nil
}

func (s *service) Confirm(ctx context.Context, sessionID string, req ConfirmRequest) (*reservations.Reservation, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.General.SystemActive {
		return nil, ErrSystemInactive
	}

	selection, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if selection.Date == "" {
		return nil, ErrNoActiveDate
	}
	if len(selection.Units) < cfg.Seats.MinSeatsPerBooking {
		return nil, ErrTooFewUnits
	}

	// Availability can change between selection and checkout
	parsed, err := availability.ParseDate(selection.Date)
	if err != nil {
		return nil, err
	}
	if !availability.IsDateAvailable(parsed, s.now(), cfg.Dates) {
		return nil, ErrDateUnavailable
	}

	list, err := s.reservations.List(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.General.MaxDailyReservations > 0 &&
		reservations.CountForDate(list, selection.Date) >= cfg.General.MaxDailyReservations {
		return nil, ErrDailyLimitReached
	}

	occupied := reservations.ReservedUnitsForDate(list, selection.Date)
	for _, unit := range selection.Units {
		if occupied[unit] {
			return nil, fmt.Errorf("%w: %s", ErrSelectionChanged, unit)
		}
	}

	total := pricing.ComputeTotal(selection.Units, cfg.Seats, cfg.Prices)

	reservation, err := s.reservations.Commit(ctx, reservations.CommitRequest{
		Date:      selection.Date,
		Units:     selection.Units,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		Total:     total.Format(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.log.WithSessionID(sessionID).WithError(err).Warn("failed to clear selection after commit")
	}

	return reservation, nil
}

func (s *service) occupiedUnits(ctx context.Context, date string) (map[string]bool, error) {
	list, err := s.reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	return reservations.ReservedUnitsForDate(list, date), nil
}
