package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/handler"
)

// ---- mock TripServicer -------------------------------------------------------

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	list      func(ctx context.Context) ([]domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	add       func(ctx context.Context, d domain.TripDraft) (domain.Trip, error)
	remove    func(ctx context.Context, id string) error
	findByID  func(ctx context.Context, id string) (domain.Trip, error)
}

func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Add(ctx context.Context, d domain.TripDraft) (domain.Trip, error) {
	return m.add(ctx, d)
}
func (m *mockTripServicer) Remove(ctx context.Context, id string) error {
	return m.remove(ctx, id)
}
func (m *mockTripServicer) FindByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.findByID(ctx, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- mock TripDetailer -------------------------------------------------------

type mockDetail struct {
	trip      domain.Trip
	addTravel func(ctx context.Context, it domain.TravelItem) (domain.TravelItem, error)
	addHotel  func(ctx context.Context, it domain.HotelItem) (domain.HotelItem, error)
	addEvent  func(ctx context.Context, it domain.EventItem) (domain.EventItem, error)
	remove    func(ctx context.Context, kind domain.ItemKind, id domain.ItemID) error
}

func (m *mockDetail) Trip() domain.Trip { return m.trip }
func (m *mockDetail) AddTravel(ctx context.Context, it domain.TravelItem) (domain.TravelItem, error) {
	return m.addTravel(ctx, it)
}
func (m *mockDetail) AddHotel(ctx context.Context, it domain.HotelItem) (domain.HotelItem, error) {
	return m.addHotel(ctx, it)
}
func (m *mockDetail) AddEvent(ctx context.Context, it domain.EventItem) (domain.EventItem, error) {
	return m.addEvent(ctx, it)
}
func (m *mockDetail) Remove(ctx context.Context, kind domain.ItemKind, id domain.ItemID) error {
	return m.remove(ctx, kind, id)
}

var _ handler.TripDetailer = (*mockDetail)(nil)

// openerFor returns a DetailOpener that hands out d for its own trip id and
// domain.ErrNotFound for any other.
func openerFor(d *mockDetail) handler.DetailOpener {
	return handler.DetailOpenerFunc(func(_ context.Context, id string) (handler.TripDetailer, error) {
		if d == nil || id != d.trip.ID {
			return nil, domain.ErrNotFound
		}
		return d, nil
	})
}

// ---- mock SessionServicer ----------------------------------------------------

// mockSession keeps its state in plain fields; error fields force failures.
type mockSession struct {
	user      domain.User
	loggedIn  bool
	active    string
	lightMode bool

	loginErr  error
	writeErr  error
	loginArgs []string
}

func (m *mockSession) Login(_ context.Context, email, password string) (domain.User, error) {
	m.loginArgs = []string{email, password}
	if m.loginErr != nil {
		return domain.User{}, m.loginErr
	}
	m.user, m.loggedIn = domain.User{Email: email}, true
	return m.user, nil
}
func (m *mockSession) Logout(context.Context) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.user, m.loggedIn = domain.User{}, false
	return nil
}
func (m *mockSession) CurrentUser(context.Context) (domain.User, bool) { return m.user, m.loggedIn }
func (m *mockSession) ActiveTripID(context.Context) (string, bool)     { return m.active, m.active != "" }
func (m *mockSession) SetActiveTrip(_ context.Context, id string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.active = id
	return nil
}
func (m *mockSession) LightMode(context.Context) bool { return m.lightMode }
func (m *mockSession) ToggleTheme(context.Context) (bool, error) {
	if m.writeErr != nil {
		return false, m.writeErr
	}
	m.lightMode = !m.lightMode
	return m.lightMode, nil
}

var _ handler.SessionServicer = (*mockSession)(nil)

// ---- mock ExportServicer -----------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers -----------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// deps collects the services for newHTTPHandler; nil fields stay nil.
type deps struct {
	trips   handler.TripServicer
	details handler.DetailOpener
	session handler.SessionServicer
	export  handler.ExportServicer
}

// newHTTPHandler wires a Server into the real router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	if d.session == nil {
		d.session = &mockSession{}
	}
	srv := handler.NewServer(d.trips, d.details, d.session, d.export, nil, discardLogger())
	return handler.NewRouter(srv, handler.RouterOptions{CORSOrigins: []string{"http://localhost:5173"}})
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// postForm builds a form-encoded POST request.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:        "11111111-1111-4111-8111-111111111111",
		Name:      "Paris",
		StartDate: "2025-06-01",
		Duration:  5,
		People:    []string{"Ann", "Bo"},
		TravelItems: []domain.TravelItem{
			{ID: "t1", From: "NYC", To: "CDG", Duration: "7h", Cost: "450"},
		},
	}.Normalize()
}
