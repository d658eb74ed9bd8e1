package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ItemKind names one of the three line-item sequences on a trip.
type ItemKind string

const (
	KindTravel ItemKind = "travel"
	KindHotel  ItemKind = "hotel"
	KindEvent  ItemKind = "event"
)

// ParseItemKind maps a URL segment onto an ItemKind.
func ParseItemKind(s string) (ItemKind, error) {
	switch k := ItemKind(s); k {
	case KindTravel, KindHotel, KindEvent:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown item kind %q", ErrValidation, s)
}

// ItemID identifies a line item within its trip.
// New ids are UUID strings; records written by the first version of the app
// carried millisecond timestamps as JSON numbers, which decode to their
// decimal string.
type ItemID string

// UnmarshalJSON accepts both a JSON string and a JSON number.
func (id *ItemID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("item id: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// TravelItem is a leg of the journey between two places.
type TravelItem struct {
	ID       ItemID `json:"id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Duration string `json:"duration"`
	Cost     string `json:"cost,omitempty"`
}

// HotelItem is an accommodation booking. Cost is per night.
type HotelItem struct {
	ID       ItemID `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Duration string `json:"duration,omitempty"`
	Cost     string `json:"cost,omitempty"`
}

// EventItem is a scheduled activity. Time is a local "2006-01-02T15:04" value.
type EventItem struct {
	ID    ItemID `json:"id"`
	Name  string `json:"name"`
	Place string `json:"place"`
	Time  string `json:"time,omitempty"`
	Cost  string `json:"cost,omitempty"`
}

// EventTimeLayout is the layout of an HTML datetime-local input value.
const EventTimeLayout = "2006-01-02T15:04"

// ParseEventTime parses an event time. ok is false for empty or malformed input.
func ParseEventTime(s string) (time.Time, bool) {
	t, err := time.Parse(EventTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
