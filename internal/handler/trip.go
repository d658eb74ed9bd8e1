package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travelplanner/internal/domain"
)

// Trip is the API representation of a trip.
// StartDate is omitted when the stored date is missing or unreadable.
type Trip struct {
	Id          string              `json:"id"`
	Name        string              `json:"name"`
	StartDate   *openapi_types.Date `json:"startDate,omitempty"`
	Duration    *int                `json:"duration,omitempty"`
	Type        *string             `json:"type,omitempty"`
	People      []string            `json:"people"`
	Notes       *string             `json:"notes,omitempty"`
	TravelItems []domain.TravelItem `json:"travelItems"`
	HotelItems  []domain.HotelItem  `json:"hotelItems"`
	EventItems  []domain.EventItem  `json:"eventItems"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Pagination describes the page returned by ListTrips.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /api/trips.
type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListTrips handles GET /api/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
// Trips are returned in dashboard order.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("page must be an integer"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("limit must be an integer"))
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		s.log.ErrorContext(r.Context(), "list trips failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	data := make([]Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid trip id"))
		return
	}

	trip, err := s.trips.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.log.ErrorContext(r.Context(), "get trip failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// tripToResponse converts a domain.Trip into its API representation.
func tripToResponse(t domain.Trip) Trip {
	t = t.Normalize()
	resp := Trip{
		Id:          t.ID,
		Name:        t.Name,
		People:      t.People,
		TravelItems: t.TravelItems,
		HotelItems:  t.HotelItems,
		EventItems:  t.EventItems,
		CreatedAt:   t.CreatedAt,
	}
	if start, ok := t.Start(); ok {
		resp.StartDate = &openapi_types.Date{Time: start}
	}
	if t.Duration > 0 {
		resp.Duration = &t.Duration
	}
	if t.Type != "" {
		resp.Type = &t.Type
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	return resp
}
