// Package handler implements the HTTP surface of the travel planner: the
// server-rendered pages, the read-only JSON API and the export endpoint.
// All handlers are methods on Server. They are split into files by page
// (pages.go, dashboard.go, detail.go) and by API concern (trip.go, export.go,
// health.go), but all share the same Server struct and its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/render"
)

// TripServicer defines the trip-collection operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the service layer.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Add(ctx context.Context, draft domain.TripDraft) (domain.Trip, error)
	Remove(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (domain.Trip, error)
}

// TripDetailer is the per-request working set for one trip's line items.
type TripDetailer interface {
	Trip() domain.Trip
	AddTravel(ctx context.Context, item domain.TravelItem) (domain.TravelItem, error)
	AddHotel(ctx context.Context, item domain.HotelItem) (domain.HotelItem, error)
	AddEvent(ctx context.Context, item domain.EventItem) (domain.EventItem, error)
	Remove(ctx context.Context, kind domain.ItemKind, id domain.ItemID) error
}

// DetailOpener loads a TripDetailer. It returns domain.ErrNotFound when the
// trip does not exist.
type DetailOpener interface {
	OpenDetail(ctx context.Context, tripID string) (TripDetailer, error)
}

// DetailOpenerFunc adapts a function to DetailOpener.
type DetailOpenerFunc func(ctx context.Context, tripID string) (TripDetailer, error)

// OpenDetail calls f.
func (f DetailOpenerFunc) OpenDetail(ctx context.Context, tripID string) (TripDetailer, error) {
	return f(ctx, tripID)
}

// SessionServicer defines the per-profile singletons the pages read and write.
type SessionServicer interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (domain.User, bool)
	ActiveTripID(ctx context.Context) (string, bool)
	SetActiveTrip(ctx context.Context, tripID string) error
	LightMode(ctx context.Context) bool
	ToggleTheme(ctx context.Context) (bool, error)
}

// ExportServicer defines the export operation used by GET /export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
// Any service may be nil in tests that do not exercise the routes using it.
type Server struct {
	trips   TripServicer
	details DetailOpener
	session SessionServicer
	export  ExportServicer
	pages   *render.Renderer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil renderer or logger is replaced with a working default.
func NewServer(trips TripServicer, details DetailOpener, session SessionServicer, export ExportServicer, pages *render.Renderer, log *slog.Logger) *Server {
	if pages == nil {
		pages = render.MustNewRenderer()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:   trips,
		details: details,
		session: session,
		export:  export,
		pages:   pages,
		log:     log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil, nil)
}
