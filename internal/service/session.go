package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/repo"
)

// SessionService manages the per-profile singletons: who is logged in, which
// trip the detail page shows, and the theme.
type SessionService struct {
	repo repo.SessionRepo
}

// NewSessionService constructs a SessionService backed by the provided repo.
func NewSessionService(r repo.SessionRepo) *SessionService {
	return &SessionService{repo: r}
}

// Login records email as the current user, replacing any previous one.
// There is no authentication: the password only has to be present.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, fmt.Errorf("service.SessionService.Login: %w: email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(password) == "" {
		return domain.User{}, fmt.Errorf("service.SessionService.Login: %w: password is required", domain.ErrValidation)
	}

	u := domain.User{Email: email}
	if err := s.repo.SetUser(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("service.SessionService.Login: %w", err)
	}
	return u, nil
}

// Logout forgets the current user. Trips are kept.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.repo.ClearUser(ctx); err != nil {
		return fmt.Errorf("service.SessionService.Logout: %w", err)
	}
	return nil
}

// CurrentUser returns the logged-in user; ok is false when nobody is.
func (s *SessionService) CurrentUser(ctx context.Context) (domain.User, bool) {
	return s.repo.User(ctx)
}

// ActiveTripID returns the trip the detail page should load.
func (s *SessionService) ActiveTripID(ctx context.Context) (string, bool) {
	return s.repo.ActiveTripID(ctx)
}

// SetActiveTrip points the detail page at tripID.
func (s *SessionService) SetActiveTrip(ctx context.Context, tripID string) error {
	if err := s.repo.SetActiveTripID(ctx, tripID); err != nil {
		return fmt.Errorf("service.SessionService.SetActiveTrip: %w", err)
	}
	return nil
}

// LightMode reports whether the light theme is on.
func (s *SessionService) LightMode(ctx context.Context) bool {
	return s.repo.LightMode(ctx)
}

// ToggleTheme flips the light-mode preference and returns the new value.
func (s *SessionService) ToggleTheme(ctx context.Context) (bool, error) {
	on := !s.repo.LightMode(ctx)
	if err := s.repo.SetLightMode(ctx, on); err != nil {
		return false, fmt.Errorf("service.SessionService.ToggleTheme: %w", err)
	}
	return on, nil
}
