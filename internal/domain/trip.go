// Package domain contains the core data types for the travel planner.
// This package has almost no external dependencies and is imported by every
// other internal package (storage, repo, service, render, handler).
package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// SchemaVersion is written into every persisted trip record.
// Records without it (or with 0) are treated as legacy and migrated on read.
const SchemaVersion = 1

// DateLayout is the ISO calendar-date layout used for trip start dates.
const DateLayout = "2006-01-02"

// Trip is the top-level planning record. Line items are nested inside it and
// are never stored on their own: deleting a trip discards its items.
type Trip struct {
	SchemaVersion int          `json:"schemaVersion"`
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	StartDate     string       `json:"startDate"` // "2006-01-02"; may be empty or invalid in legacy data
	Duration      int          `json:"duration,omitempty"`
	Type          string       `json:"type,omitempty"`
	People        []string     `json:"people"`
	Notes         string       `json:"notes,omitempty"`
	TravelItems   []TravelItem `json:"travelItems"`
	HotelItems    []HotelItem  `json:"hotelItems"`
	EventItems    []EventItem  `json:"eventItems"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// TripDraft carries the user-supplied fields for a new trip.
// The service layer trims, validates and normalises it into a Trip.
type TripDraft struct {
	Name      string
	StartDate string
	Duration  int
	Type      string
	People    []string
	Notes     string
}

// Start parses StartDate. ok is false when the date is missing or malformed.
func (t Trip) Start() (start time.Time, ok bool) {
	return ParseDate(t.StartDate)
}

// ParseDate parses an ISO calendar date, also accepting a full RFC 3339
// timestamp (older records stored the output of a date picker verbatim).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// legacyTrip is the superset of every trip shape ever written.
// It exists only to decode old records; Trip is always written canonically.
type legacyTrip struct {
	SchemaVersion int             `json:"schemaVersion"`
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	StartDate     string          `json:"startDate"`
	Date          string          `json:"date"`
	Duration      json.RawMessage `json:"duration"`
	Type          string          `json:"type"`
	People        []string        `json:"people"`
	Members       json.RawMessage `json:"members"`
	Notes         string          `json:"notes"`
	TravelItems   []TravelItem    `json:"travelItems"`
	HotelItems    []HotelItem     `json:"hotelItems"`
	EventItems    []EventItem     `json:"eventItems"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// UnmarshalJSON decodes both the canonical shape and the two legacy shapes
// ({date, people} and {startDate, members}), normalising into the canonical one.
func (t *Trip) UnmarshalJSON(b []byte) error {
	var raw legacyTrip
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*t = Trip{
		SchemaVersion: SchemaVersion,
		ID:            raw.ID,
		Name:          raw.Name,
		StartDate:     raw.StartDate,
		Duration:      decodeDuration(raw.Duration),
		Type:          raw.Type,
		People:        raw.People,
		Notes:         raw.Notes,
		TravelItems:   raw.TravelItems,
		HotelItems:    raw.HotelItems,
		EventItems:    raw.EventItems,
		CreatedAt:     raw.CreatedAt,
	}
	if t.StartDate == "" {
		t.StartDate = raw.Date
	}
	if t.People == nil {
		t.People = decodeMembers(raw.Members)
	}
	t.People = CleanNames(t.People)
	t.ensureSlices()
	return nil
}

// ensureSlices replaces nil item slices with empty ones so the record always
// serialises as [] rather than null.
func (t *Trip) ensureSlices() {
	if t.People == nil {
		t.People = []string{}
	}
	if t.TravelItems == nil {
		t.TravelItems = []TravelItem{}
	}
	if t.HotelItems == nil {
		t.HotelItems = []HotelItem{}
	}
	if t.EventItems == nil {
		t.EventItems = []EventItem{}
	}
}

// Normalize returns t with empty item slices and the current schema version.
func (t Trip) Normalize() Trip {
	t.SchemaVersion = SchemaVersion
	t.ensureSlices()
	return t
}

// CleanNames trims every entry and drops the blank ones. Never returns nil.
func CleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// decodeMembers accepts either a JSON array of names or a comma-separated string.
func decodeMembers(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var csv string
	if err := json.Unmarshal(raw, &csv); err == nil {
		return strings.Split(csv, ",")
	}
	return nil
}

// decodeDuration accepts a JSON number or a numeric string; anything else is 0.
func decodeDuration(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		n = json.Number(strings.TrimSpace(s))
	}
	v, err := n.Int64()
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}
