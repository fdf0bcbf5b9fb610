package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/config"
	"seatwise/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login attempt
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginAttempt carries the client details of a login request
type LoginAttempt struct {
	Password  string
	IP        string
	UserAgent string
}

type Service interface {
	// Login verifies the admin password and issues a session token.
	// Every attempt, failed or not, lands in the login history.
	Login(ctx context.Context, attempt LoginAttempt) (*Session, error)
	LoginHistory(ctx context.Context) ([]LoginRecord, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	// ResetAll wipes settings, reservations and login history. Settings
	// come back as defaults; everything else starts empty.
	ResetAll(ctx context.Context) error
}

type tokenClaims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

type service struct {
	repo         Repository
	settings     settings.Service
	reservations reservations.Service
	cfg          *config.Config
	passwordHash []byte
	log          *logger.Logger
}

func NewService(repo Repository, settingsService settings.Service, reservationService reservations.Service, cfg *config.Config, log *logger.Logger) (Service, error) {
	hash := []byte(cfg.Admin.PasswordHash)
	if len(hash) == 0 {
		// No pre-hashed password configured; hash the plain one at startup
		// so the comparison path is uniform.
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = generated
	}

	return &service{
		repo:         repo,
		settings:     settingsService,
		reservations: reservationService,
		cfg:          cfg,
		passwordHash: hash,
		log:          log,
	}, nil
}

func (s *service) Login(ctx context.Context, attempt LoginAttempt) (*Session, error) {
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(attempt.Password))
	success := err == nil

	record := LoginRecord{
		Timestamp: time.Now().UTC(),
		IP:        attempt.IP,
		UserAgent: attempt.UserAgent,
		Success:   success,
	}
	if histErr := s.repo.AppendLogin(ctx, record, s.cfg.Admin.LoginHistoryLimit); histErr != nil {
		s.log.ErrorWithContext(ctx, "failed to record login attempt", histErr, nil)
	}

	if !success {
		s.log.LogAuthFailure(ctx, "password mismatch", attempt.IP)
		return nil, ErrInvalidCredentials
	}

	session, err := s.issueToken(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, attempt.IP)
	return session, nil
}

func (s *service) issueToken(now time.Time) (*Session, error) {
	expiresAt := now.Add(s.cfg.Admin.SessionExpiry)

	claims := tokenClaims{
		Role: "admin",
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Admin.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &Session{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *service) LoginHistory(ctx context.Context) ([]LoginRecord, error) {
	return s.repo.LoginHistory(ctx)
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.reservations.Stats(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		EventName:    cfg.General.EventName,
		SystemActive: cfg.General.SystemActive,
		LayoutMode:   cfg.Seats.Mode,
		Reservations: stats,
	}

	history, err := s.repo.LoginHistory(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range history {
		if record.Success {
			ts := record.Timestamp
			dashboard.LastLogin = &ts
			break
		}
	}

	return dashboard, nil
}

func (s *service) ResetAll(ctx context.Context) error {
	if _, err := s.settings.Reset(ctx); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	if err := s.reservations.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset reservations: %w", err)
	}
	if err := s.repo.DeleteLoginHistory(ctx); err != nil {
		return fmt.Errorf("reset login history: %w", err)
	}
	return nil
}
