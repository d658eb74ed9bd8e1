// Package service contains the business logic for the travel planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage encoding lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/metrics"
	"github.com/pkordes/travelplanner/internal/repo"
)

// TripService implements business logic for Trip operations.
//
// Every mutation is a read-modify-write of the whole collection. Two requests
// from the same profile racing each other are last-writer-wins; there is no
// merge or conflict detection.
type TripService struct {
	repo    repo.TripRepo
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// m may be nil.
func NewTripService(r repo.TripRepo, m *metrics.Metrics) *TripService {
	return &TripService{repo: r, metrics: m, now: time.Now}
}

// List returns the persisted trips in display order (see Sorted).
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	return Sorted(s.repo.List(ctx)), nil
}

// ListPaged returns one page of the display-ordered trips and the total count.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips := Sorted(s.repo.List(ctx))
	start, end := p.Window(len(trips))
	return trips[start:end], int64(len(trips)), nil
}

// Add validates the draft and appends a new trip to the collection.
// Returns domain.ErrValidation if the draft violates business rules.
func (s *TripService) Add(ctx context.Context, draft domain.TripDraft) (domain.Trip, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Add: %w", err)
	}

	trips := s.repo.List(ctx)
	trip := domain.Trip{
		ID:        s.newTripID(trips),
		Name:      strings.TrimSpace(draft.Name),
		StartDate: strings.TrimSpace(draft.StartDate),
		Duration:  draft.Duration,
		Type:      strings.TrimSpace(draft.Type),
		People:    domain.CleanNames(draft.People),
		Notes:     strings.TrimSpace(draft.Notes),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}.Normalize()

	if err := s.repo.Save(ctx, append(trips, trip)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Add: %w", err)
	}
	s.metrics.TripMutation("add")
	return trip, nil
}

// Remove deletes the trip with the given id together with all its line items.
// Removing an id that does not exist is a no-op, not an error.
func (s *TripService) Remove(ctx context.Context, id string) error {
	trips := s.repo.List(ctx)
	kept := slices.DeleteFunc(slices.Clone(trips), func(t domain.Trip) bool { return t.ID == id })
	if len(kept) == len(trips) {
		return nil
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("service.TripService.Remove: %w", err)
	}
	s.metrics.TripMutation("remove")
	return nil
}

// FindByID returns the trip with the given id.
// Returns domain.ErrNotFound if it does not exist (e.g. deleted from another tab).
func (s *TripService) FindByID(ctx context.Context, id string) (domain.Trip, error) {
	trips := s.repo.List(ctx)
	i := slices.IndexFunc(trips, func(t domain.Trip) bool { return t.ID == id })
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.FindByID: %w", domain.ErrNotFound)
	}
	return trips[i], nil
}

// Replace overwrites the stored trip that has the same id as trip.
// Returns domain.ErrNotFound if the trip has been deleted in the meantime;
// a deleted trip is never resurrected.
func (s *TripService) Replace(ctx context.Context, trip domain.Trip) error {
	trips := s.repo.List(ctx)
	i := slices.IndexFunc(trips, func(t domain.Trip) bool { return t.ID == trip.ID })
	if i < 0 {
		return fmt.Errorf("service.TripService.Replace: %w", domain.ErrNotFound)
	}
	trips[i] = trip
	if err := s.repo.Save(ctx, trips); err != nil {
		return fmt.Errorf("service.TripService.Replace: %w", err)
	}
	return nil
}

// newTripID returns a random UUID that no existing trip uses.
// A collision is astronomically unlikely; the loop makes the invariant explicit.
func (s *TripService) newTripID(existing []domain.Trip) string {
	for {
		id := uuid.NewString()
		if !slices.ContainsFunc(existing, func(t domain.Trip) bool { return t.ID == id }) {
			return id
		}
	}
}

// Sorted returns a copy of trips ordered by start date ascending.
// Trips whose start date is missing or unparseable sort after every dated
// trip. Ties keep their storage order.
func Sorted(trips []domain.Trip) []domain.Trip {
	out := slices.Clone(trips)
	if out == nil {
		out = []domain.Trip{}
	}
	slices.SortStableFunc(out, func(a, b domain.Trip) int {
		da, okA := a.Start()
		db, okB := b.Start()
		switch {
		case okA && okB:
			return da.Compare(db)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	return out
}

// validateDraft enforces the trip creation rules.
//   - Name must be non-empty after trimming.
//   - StartDate, if set, must be a YYYY-MM-DD date. Stored legacy records
//     may hold other shapes; those are only read, never created.
//   - Duration must not be negative.
func validateDraft(d domain.TripDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if sd := strings.TrimSpace(d.StartDate); sd != "" {
		if _, err := time.Parse(domain.DateLayout, sd); err != nil {
			return fmt.Errorf("%w: date must be a valid YYYY-MM-DD date", domain.ErrValidation)
		}
	}
	if d.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	return nil
}
