package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per line item, with trip fields
// repeated for every item on that trip. Trips with no items yield one row
// with empty values for all item fields.
type ExportRow struct {
	// Trip fields, repeated for every item on the trip.
	TripID        string
	TripName      string
	TripStartDate string // "2006-01-02" or empty when the stored date is invalid
	TripDuration  int
	People        []string

	// Item fields, empty when the trip has no items.
	ItemKind     ItemKind
	ItemID       string
	ItemTitle    string // "NYC → LAX" for travel, the name otherwise
	ItemLocation string // hotel location or event place
	ItemWhen     string // travel/hotel duration or event time
	ItemCost     string
}
