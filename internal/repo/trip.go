// Package repo contains all persistence logic for the travel planner.
// Each record has its own file with an interface and a storage-backed
// implementation. No business logic lives here, only key selection and
// type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/storage"
)

// TripRepo defines the persistence operations for the trip collection.
// The whole collection lives under one key, so every mutation rewrites it.
// The service layer depends on this interface, not the storage-backed
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// List returns the persisted collection in storage order.
	// Malformed or missing data yields an empty, non-nil slice.
	List(ctx context.Context) []domain.Trip

	// Save replaces the persisted collection.
	Save(ctx context.Context, trips []domain.Trip) error
}

// storageTripRepo is the storage.Adapter implementation of TripRepo.
type storageTripRepo struct {
	store *storage.Adapter
}

// NewTripRepo constructs a TripRepo backed by the provided adapter.
func NewTripRepo(store *storage.Adapter) TripRepo {
	return &storageTripRepo{store: store}
}

func (r *storageTripRepo) List(ctx context.Context) []domain.Trip {
	trips := []domain.Trip{}
	r.store.Read(ctx, storage.KeyTrips, &trips)
	if trips == nil {
		// A stored JSON null decodes to a nil slice.
		return []domain.Trip{}
	}
	return trips
}

func (r *storageTripRepo) Save(ctx context.Context, trips []domain.Trip) error {
	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Normalize()
	}
	if err := r.store.Write(ctx, storage.KeyTrips, out); err != nil {
		return fmt.Errorf("repo.TripRepo.Save: %w", err)
	}
	return nil
}
