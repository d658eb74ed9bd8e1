package service

import (
	"context"

	"github.com/pkordes/travelplanner/internal/domain"
)

// ExportService assembles a flat export of every trip and its line items.
type ExportService struct {
	trips *TripService
}

// NewExportService constructs an ExportService reading through trips.
func NewExportService(trips *TripService) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per line item across all trips, in display
// order: travel, then hotels, then events within each trip.
// Trips with no items contribute one row with empty item fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := []domain.ExportRow{}
	for _, t := range trips {
		base := domain.ExportRow{
			TripID:       t.ID,
			TripName:     t.Name,
			TripDuration: t.Duration,
			People:       t.People,
		}
		if _, ok := t.Start(); ok {
			base.TripStartDate = t.StartDate
		}

		n := len(rows)
		for _, it := range t.TravelItems {
			r := base
			r.ItemKind, r.ItemID = domain.KindTravel, string(it.ID)
			r.ItemTitle = it.From + " → " + it.To
			r.ItemWhen, r.ItemCost = it.Duration, it.Cost
			rows = append(rows, r)
		}
		for _, it := range t.HotelItems {
			r := base
			r.ItemKind, r.ItemID = domain.KindHotel, string(it.ID)
			r.ItemTitle, r.ItemLocation = it.Name, it.Location
			r.ItemWhen, r.ItemCost = it.Duration, it.Cost
			rows = append(rows, r)
		}
		for _, it := range t.EventItems {
			r := base
			r.ItemKind, r.ItemID = domain.KindEvent, string(it.ID)
			r.ItemTitle, r.ItemLocation = it.Name, it.Place
			r.ItemWhen, r.ItemCost = it.Time, it.Cost
			rows = append(rows, r)
		}
		if len(rows) == n {
			rows = append(rows, base)
		}
	}
	return rows, nil
}
