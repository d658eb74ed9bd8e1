package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/render"
)

// TripDetail handles GET /trip-detail.
// The trip comes from ?tripId= when present, which also becomes the active
// trip, and from the stored active-trip pointer otherwise. A missing or
// deleted trip renders the empty state, not an error.
func (s *Server) TripDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("tripId")
	if id != "" {
		if err := s.session.SetActiveTrip(ctx, id); err != nil {
			s.serverError(w, r, "set active trip failed", err)
			return
		}
	} else {
		id, _ = s.session.ActiveTripID(ctx)
	}

	detail, ok := s.openDetail(w, r, id)
	if !ok {
		return
	}
	s.renderDetail(w, r, http.StatusOK, detail, render.ItemForm{})
}

// AddItem handles POST /trip-detail/{kind}?tripId=.
func (s *Server) AddItem(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseItemKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	detail, ok := s.openDetail(w, r, s.requestTripID(r))
	if !ok {
		return
	}

	values := formValues(r, itemFields[kind]...)
	switch kind {
	case domain.KindTravel:
		_, err = detail.AddTravel(r.Context(), domain.TravelItem{
			From: values["from"], To: values["to"], Duration: values["duration"], Cost: values["cost"],
		})
	case domain.KindHotel:
		_, err = detail.AddHotel(r.Context(), domain.HotelItem{
			Name: values["name"], Location: values["location"], Duration: values["duration"], Cost: values["cost"],
		})
	case domain.KindEvent:
		_, err = detail.AddEvent(r.Context(), domain.EventItem{
			Name: values["name"], Place: values["place"], Time: values["time"], Cost: values["cost"],
		})
	}

	switch {
	case err == nil:
		redirect(w, r, detailURL(detail.Trip().ID))
	case errors.Is(err, domain.ErrValidation):
		form := render.ItemForm{Kind: kind, Values: values, Error: formMessage(err)}
		s.renderDetail(w, r, http.StatusUnprocessableEntity, detail, form)
	case errors.Is(err, domain.ErrNotFound):
		// Deleted in another tab between load and save.
		s.renderMissingTrip(w, r)
	default:
		s.serverError(w, r, "add item failed", err)
	}
}

// DeleteItem handles POST /trip-detail/{kind}/{itemID}/delete?tripId=.
// Removing an item that is already gone is not an error.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseItemKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.NotFound(w, r)
		return
	}

	detail, ok := s.openDetail(w, r, s.requestTripID(r))
	if !ok {
		return
	}

	err = detail.Remove(r.Context(), kind, domain.ItemID(chi.URLParam(r, "itemID")))
	switch {
	case err == nil:
		redirect(w, r, detailURL(detail.Trip().ID))
	case errors.Is(err, domain.ErrNotFound):
		s.renderMissingTrip(w, r)
	default:
		s.serverError(w, r, "remove item failed", err)
	}
}

// itemFields lists the form fields read for each item kind.
var itemFields = map[domain.ItemKind][]string{
	domain.KindTravel: {"from", "to", "duration", "cost"},
	domain.KindHotel:  {"name", "location", "duration", "cost"},
	domain.KindEvent:  {"name", "place", "time", "cost"},
}

func formValues(r *http.Request, names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = r.PostForm.Get(n)
	}
	return out
}

// requestTripID reads the trip id from the query string, falling back to the
// active-trip pointer.
func (s *Server) requestTripID(r *http.Request) string {
	if id := r.URL.Query().Get("tripId"); id != "" {
		return id
	}
	id, _ := s.session.ActiveTripID(r.Context())
	return id
}

// openDetail loads the working set for id. When the trip does not exist it
// renders the empty state and reports false.
func (s *Server) openDetail(w http.ResponseWriter, r *http.Request, id string) (TripDetailer, bool) {
	if id == "" {
		s.renderMissingTrip(w, r)
		return nil, false
	}
	detail, err := s.details.OpenDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderMissingTrip(w, r)
			return nil, false
		}
		s.serverError(w, r, "open trip failed", err)
		return nil, false
	}
	return detail, true
}

func (s *Server) renderDetail(w http.ResponseWriter, r *http.Request, status int, detail TripDetailer, form render.ItemForm) {
	trip := detail.Trip()
	view := render.NewDetailView(s.layout(r, render.PageTripDetail, trip.Name), trip, true, form)
	s.renderPage(w, r, status, render.PageTripDetail, view)
}

func (s *Server) renderMissingTrip(w http.ResponseWriter, r *http.Request) {
	view := render.NewDetailView(s.layout(r, render.PageTripDetail, "Trip not found"), domain.Trip{}, false, render.ItemForm{})
	s.renderPage(w, r, http.StatusOK, render.PageTripDetail, view)
}
