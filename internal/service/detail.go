package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travelplanner/internal/domain"
)

// TripDetail is the working set for one trip's line items.
// It lives for a single request: OpenDetail loads it, the mutators flush the
// whole trip back through TripService.Replace, and it is dropped afterwards.
//
// The in-memory sequences only change once the flush has succeeded, so a
// failed write never leaves the working set ahead of storage.
type TripDetail struct {
	trips *TripService
	trip  domain.Trip
}

// OpenDetail loads the trip with the given id into a fresh working set.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) OpenDetail(ctx context.Context, tripID string) (*TripDetail, error) {
	trip, err := s.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.OpenDetail: %w", err)
	}
	return &TripDetail{trips: s, trip: trip.Normalize()}, nil
}

// Trip returns the current snapshot of the trip and its items.
func (d *TripDetail) Trip() domain.Trip {
	return d.trip
}

// AddTravel validates and appends a travel item. From, To and Duration are required.
func (d *TripDetail) AddTravel(ctx context.Context, item domain.TravelItem) (domain.TravelItem, error) {
	item = domain.TravelItem{
		ID:       newItemID(),
		From:     strings.TrimSpace(item.From),
		To:       strings.TrimSpace(item.To),
		Duration: strings.TrimSpace(item.Duration),
		Cost:     strings.TrimSpace(item.Cost),
	}
	if err := validateItem(
		field{"from", item.From}, field{"to", item.To}, field{"duration", item.Duration},
	); err != nil {
		return domain.TravelItem{}, fmt.Errorf("service.TripDetail.AddTravel: %w", err)
	}
	if err := validateCost(item.Cost); err != nil {
		return domain.TravelItem{}, fmt.Errorf("service.TripDetail.AddTravel: %w", err)
	}

	next := d.trip
	next.TravelItems = append(slices.Clone(d.trip.TravelItems), item)
	if err := d.flush(ctx, next, domain.KindTravel, "add"); err != nil {
		return domain.TravelItem{}, fmt.Errorf("service.TripDetail.AddTravel: %w", err)
	}
	return item, nil
}

// AddHotel validates and appends a hotel item. Name and Location are required.
func (d *TripDetail) AddHotel(ctx context.Context, item domain.HotelItem) (domain.HotelItem, error) {
	item = domain.HotelItem{
		ID:       newItemID(),
		Name:     strings.TrimSpace(item.Name),
		Location: strings.TrimSpace(item.Location),
		Duration: strings.TrimSpace(item.Duration),
		Cost:     strings.TrimSpace(item.Cost),
	}
	if err := validateItem(field{"name", item.Name}, field{"location", item.Location}); err != nil {
		return domain.HotelItem{}, fmt.Errorf("service.TripDetail.AddHotel: %w", err)
	}
	if err := validateCost(item.Cost); err != nil {
		return domain.HotelItem{}, fmt.Errorf("service.TripDetail.AddHotel: %w", err)
	}

	next := d.trip
	next.HotelItems = append(slices.Clone(d.trip.HotelItems), item)
	if err := d.flush(ctx, next, domain.KindHotel, "add"); err != nil {
		return domain.HotelItem{}, fmt.Errorf("service.TripDetail.AddHotel: %w", err)
	}
	return item, nil
}

// AddEvent validates and appends an event item. Name and Place are required;
// Time, if given, must be a "2006-01-02T15:04" local timestamp.
func (d *TripDetail) AddEvent(ctx context.Context, item domain.EventItem) (domain.EventItem, error) {
	item = domain.EventItem{
		ID:    newItemID(),
		Name:  strings.TrimSpace(item.Name),
		Place: strings.TrimSpace(item.Place),
		Time:  strings.TrimSpace(item.Time),
		Cost:  strings.TrimSpace(item.Cost),
	}
	if err := validateItem(field{"name", item.Name}, field{"place", item.Place}); err != nil {
		return domain.EventItem{}, fmt.Errorf("service.TripDetail.AddEvent: %w", err)
	}
	if item.Time != "" {
		if _, ok := domain.ParseEventTime(item.Time); !ok {
			return domain.EventItem{}, fmt.Errorf("service.TripDetail.AddEvent: %w: time is not a valid date and time", domain.ErrValidation)
		}
	}
	if err := validateCost(item.Cost); err != nil {
		return domain.EventItem{}, fmt.Errorf("service.TripDetail.AddEvent: %w", err)
	}

	next := d.trip
	next.EventItems = append(slices.Clone(d.trip.EventItems), item)
	if err := d.flush(ctx, next, domain.KindEvent, "add"); err != nil {
		return domain.EventItem{}, fmt.Errorf("service.TripDetail.AddEvent: %w", err)
	}
	return item, nil
}

// RemoveTravel drops the travel item with the given id. A missing id is a no-op.
func (d *TripDetail) RemoveTravel(ctx context.Context, id domain.ItemID) error {
	kept := slices.DeleteFunc(slices.Clone(d.trip.TravelItems), func(i domain.TravelItem) bool { return i.ID == id })
	if len(kept) == len(d.trip.TravelItems) {
		return nil
	}
	next := d.trip
	next.TravelItems = kept
	if err := d.flush(ctx, next, domain.KindTravel, "remove"); err != nil {
		return fmt.Errorf("service.TripDetail.RemoveTravel: %w", err)
	}
	return nil
}

// RemoveHotel drops the hotel item with the given id. A missing id is a no-op.
func (d *TripDetail) RemoveHotel(ctx context.Context, id domain.ItemID) error {
	kept := slices.DeleteFunc(slices.Clone(d.trip.HotelItems), func(i domain.HotelItem) bool { return i.ID == id })
	if len(kept) == len(d.trip.HotelItems) {
		return nil
	}
	next := d.trip
	next.HotelItems = kept
	if err := d.flush(ctx, next, domain.KindHotel, "remove"); err != nil {
		return fmt.Errorf("service.TripDetail.RemoveHotel: %w", err)
	}
	return nil
}

// RemoveEvent drops the event item with the given id. A missing id is a no-op.
func (d *TripDetail) RemoveEvent(ctx context.Context, id domain.ItemID) error {
	kept := slices.DeleteFunc(slices.Clone(d.trip.EventItems), func(i domain.EventItem) bool { return i.ID == id })
	if len(kept) == len(d.trip.EventItems) {
		return nil
	}
	next := d.trip
	next.EventItems = kept
	if err := d.flush(ctx, next, domain.KindEvent, "remove"); err != nil {
		return fmt.Errorf("service.TripDetail.RemoveEvent: %w", err)
	}
	return nil
}

// Remove dispatches to the kind-specific remover.
func (d *TripDetail) Remove(ctx context.Context, kind domain.ItemKind, id domain.ItemID) error {
	switch kind {
	case domain.KindTravel:
		return d.RemoveTravel(ctx, id)
	case domain.KindHotel:
		return d.RemoveHotel(ctx, id)
	case domain.KindEvent:
		return d.RemoveEvent(ctx, id)
	}
	return fmt.Errorf("service.TripDetail.Remove: %w: unknown item kind %q", domain.ErrValidation, kind)
}

// flush writes next through the repository and, only on success, adopts it
// as the working set.
func (d *TripDetail) flush(ctx context.Context, next domain.Trip, kind domain.ItemKind, action string) error {
	if err := d.trips.Replace(ctx, next); err != nil {
		return err
	}
	d.trip = next
	d.trips.metrics.ItemMutation(string(kind), action)
	return nil
}

func newItemID() domain.ItemID {
	return domain.ItemID(uuid.NewString())
}

type field struct {
	name, value string
}

// validateItem reports the first required field that is blank.
func validateItem(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	return nil
}

// validateCost accepts an empty cost or a finite, non-negative decimal number.
func validateCost(cost string) error {
	if cost == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cost, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: cost must be a non-negative number", domain.ErrValidation)
	}
	return nil
}
