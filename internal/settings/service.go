package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	GetPublic(ctx context.Context) (*PublicSettings, error)
	GetSection(ctx context.Context, section string) (interface{}, error)
	UpdateSection(ctx context.Context, section string, payload json.RawMessage) (*Settings, error)
	ReplaceAll(ctx context.Context, s *Settings) error
	Reset(ctx context.Context) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Load(ctx)
}

func (s *service) GetPublic(ctx context.Context) (*PublicSettings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return settings.Public(), nil
}

func (s *service) GetSection(ctx context.Context, section string) (interface{}, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	switch section {
	case SectionGeneral:
		return settings.General, nil
	case SectionDates:
		return settings.Dates, nil
	case SectionSeats:
		return settings.Seats, nil
	case SectionPrices:
		return settings.Prices, nil
	case SectionDesign:
		return settings.Design, nil
	case SectionSystem:
		return settings.System, nil
	default:
		return nil, fmt.Errorf("unknown settings section %q", section)
	}
}

// UpdateSection merges payload over the current values of one section and
// rewrites the whole document. Fields absent from the payload keep their
// stored values.
func (s *service) UpdateSection(ctx context.Context, section string, payload json.RawMessage) (*Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	var target interface{}
	switch section {
	case SectionGeneral:
		target = &settings.General
	case SectionDates:
		target = &settings.Dates
	case SectionSeats:
		target = &settings.Seats
	case SectionPrices:
		target = &settings.Prices
	case SectionDesign:
		target = &settings.Design
	case SectionSystem:
		target = &settings.System
	default:
		return nil, fmt.Errorf("unknown settings section %q", section)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", section, err)
	}

	settings.System.LastUpdate = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *service) ReplaceAll(ctx context.Context, settings *Settings) error {
	settings.System.LastUpdate = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Save(ctx, settings)
}

// Reset restores factory defaults and persists them
func (s *service) Reset(ctx context.Context) (*Settings, error) {
	defaults := Defaults()
	if err := s.repo.Save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
