package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/render"
)

// Dashboard handles GET /dashboard: the trip grid, the counter and an empty
// add-trip form.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	s.renderDashboard(w, r, http.StatusOK, render.TripForm{})
}

func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, status int, form render.TripForm) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.serverError(w, r, "list trips failed", err)
		return
	}
	view := render.NewDashboardView(s.layout(r, render.PageDashboard, "Dashboard"), trips, form)
	s.renderPage(w, r, status, render.PageDashboard, view)
}

// AddTrip handles POST /trips.
// On a validation failure the dashboard is re-rendered with the submitted
// values and an inline alert, and nothing is saved.
func (s *Server) AddTrip(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := render.TripForm{
		Name:     r.PostForm.Get("name"),
		Date:     r.PostForm.Get("date"),
		Duration: r.PostForm.Get("duration"),
		Type:     r.PostForm.Get("type"),
		Notes:    r.PostForm.Get("notes"),
		People:   r.PostForm["people"],
	}

	draft, msg := formToDraft(form)
	if msg != "" {
		form.Error = msg
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, form)
		return
	}

	if _, err := s.trips.Add(r.Context(), draft); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			form.Error = formMessage(err)
			s.renderDashboard(w, r, http.StatusUnprocessableEntity, form)
			return
		}
		s.serverError(w, r, "add trip failed", err)
		return
	}
	redirect(w, r, "/dashboard")
}

// formToDraft applies the form-only rules (a numeric duration and at least
// one traveller) and returns an alert message when they fail.
func formToDraft(f render.TripForm) (domain.TripDraft, string) {
	draft := domain.TripDraft{
		Name:      f.Name,
		StartDate: f.Date,
		Type:      f.Type,
		People:    domain.CleanNames(f.People),
		Notes:     f.Notes,
	}
	if strings.TrimSpace(f.Name) == "" {
		return draft, "Please enter a trip name."
	}
	if d := strings.TrimSpace(f.Duration); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n < 0 {
			return draft, "Duration must be a whole number of days."
		}
		draft.Duration = n
	}
	if len(draft.People) == 0 {
		return draft, "Please add at least one person."
	}
	return draft, ""
}

// DeleteTrip handles POST /trips/{tripID}/delete. Deleting a trip that is
// already gone is not an error.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Remove(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		s.serverError(w, r, "delete trip failed", err)
		return
	}
	redirect(w, r, "/dashboard")
}

// ViewTrip handles POST /trips/{tripID}/view: it remembers the trip as the
// active one and opens its detail page.
func (s *Server) ViewTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tripID")
	if err := s.session.SetActiveTrip(r.Context(), id); err != nil {
		s.serverError(w, r, "set active trip failed", err)
		return
	}
	redirect(w, r, detailURL(id))
}

func detailURL(tripID string) string {
	return "/trip-detail?" + url.Values{"tripId": {tripID}}.Encode()
}
