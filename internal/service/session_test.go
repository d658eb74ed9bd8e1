package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/repo"
	"github.com/pkordes/travelplanner/internal/service"
	"github.com/pkordes/travelplanner/internal/storage"
	"github.com/pkordes/travelplanner/testutil"
)

func newSessionService(t *testing.T) (*service.SessionService, context.Context) {
	t.Helper()
	a := storage.NewAdapter(testutil.NewMemoryStore(t), slog.New(slog.DiscardHandler), nil)
	return service.NewSessionService(repo.NewSessionRepo(a)), testutil.ProfileContext(t)
}

func TestSessionService_Login(t *testing.T) {
	svc, ctx := newSessionService(t)

	u, err := svc.Login(ctx, "  jane.doe+travel@example.com ", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "jane.doe+travel@example.com", u.Email)

	got, ok := svc.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestSessionService_Login_Validation(t *testing.T) {
	svc, ctx := newSessionService(t)

	_, err := svc.Login(ctx, " ", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Login(ctx, "a@b.c", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, ok := svc.CurrentUser(ctx)
	assert.False(t, ok, "nothing is stored on validation failure")
}

func TestSessionService_Logout(t *testing.T) {
	svc, ctx := newSessionService(t)
	_, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, ok := svc.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestSessionService_ActiveTrip(t *testing.T) {
	svc, ctx := newSessionService(t)

	require.NoError(t, svc.SetActiveTrip(ctx, "trip-1"))

	id, ok := svc.ActiveTripID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trip-1", id)
}

func TestSessionService_ToggleTheme(t *testing.T) {
	svc, ctx := newSessionService(t)

	on, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, svc.LightMode(ctx))

	on, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.False(t, on)
}

// mockSessionRepo is a test double for repo.SessionRepo that fails every write.
type mockSessionRepo struct {
	repo.SessionRepo
	err error
}

func (m *mockSessionRepo) SetUser(context.Context, domain.User) error { return m.err }

func TestSessionService_Login_WriteError(t *testing.T) {
	writeErr := errors.New("quota exceeded")
	svc := service.NewSessionService(&mockSessionRepo{err: writeErr})

	_, err := svc.Login(context.Background(), "a@b.c", "pw")

	assert.ErrorIs(t, err, writeErr)
}
