package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/storage"
)

// SessionRepo persists the per-profile singletons: the logged-in user, the
// active-trip pointer and the theme preference.
type SessionRepo interface {
	// User returns the logged-in user, or ok=false when nobody is logged in.
	User(ctx context.Context) (u domain.User, ok bool)
	SetUser(ctx context.Context, u domain.User) error
	ClearUser(ctx context.Context) error

	// ActiveTripID returns the bare trip id the detail page should load.
	ActiveTripID(ctx context.Context) (id string, ok bool)
	SetActiveTripID(ctx context.Context, id string) error

	LightMode(ctx context.Context) bool
	SetLightMode(ctx context.Context, on bool) error
}

type storageSessionRepo struct {
	store *storage.Adapter
}

// NewSessionRepo constructs a SessionRepo backed by the provided adapter.
func NewSessionRepo(store *storage.Adapter) SessionRepo {
	return &storageSessionRepo{store: store}
}

func (r *storageSessionRepo) User(ctx context.Context) (domain.User, bool) {
	var u *domain.User
	if !r.store.Read(ctx, storage.KeyUser, &u) || u == nil || u.Email == "" {
		return domain.User{}, false
	}
	return *u, true
}

func (r *storageSessionRepo) SetUser(ctx context.Context, u domain.User) error {
	if err := r.store.Write(ctx, storage.KeyUser, u); err != nil {
		return fmt.Errorf("repo.SessionRepo.SetUser: %w", err)
	}
	return nil
}

func (r *storageSessionRepo) ClearUser(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("repo.SessionRepo.ClearUser: %w", err)
	}
	return nil
}

// ActiveTripID reads the pointer as a bare string, not JSON.
func (r *storageSessionRepo) ActiveTripID(ctx context.Context) (string, bool) {
	id, ok := r.store.ReadString(ctx, storage.KeyActiveTrip)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (r *storageSessionRepo) SetActiveTripID(ctx context.Context, id string) error {
	if err := r.store.WriteString(ctx, storage.KeyActiveTrip, id); err != nil {
		return fmt.Errorf("repo.SessionRepo.SetActiveTripID: %w", err)
	}
	return nil
}

func (r *storageSessionRepo) LightMode(ctx context.Context) bool {
	on := false
	r.store.Read(ctx, storage.KeyLightMode, &on)
	return on
}

func (r *storageSessionRepo) SetLightMode(ctx context.Context, on bool) error {
	if err := r.store.Write(ctx, storage.KeyLightMode, on); err != nil {
		return fmt.Errorf("repo.SessionRepo.SetLightMode: %w", err)
	}
	return nil
}
