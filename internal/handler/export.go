package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travelplanner/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_duration", "people",
	"item_kind", "item_id", "item_title", "item_location", "item_when", "item_cost",
}

// ExportRow is the JSON form of one export row. Item fields are omitted for
// trips without items.
type ExportRow struct {
	TripId        string              `json:"tripId"`
	TripName      string              `json:"tripName"`
	TripStartDate *openapi_types.Date `json:"tripStartDate,omitempty"`
	TripDuration  *int                `json:"tripDuration,omitempty"`
	People        []string            `json:"people"`
	ItemKind      *string             `json:"itemKind,omitempty"`
	ItemId        *string             `json:"itemId,omitempty"`
	ItemTitle     *string             `json:"itemTitle,omitempty"`
	ItemLocation  *string             `json:"itemLocation,omitempty"`
	ItemWhen      *string             `json:"itemWhen,omitempty"`
	ItemCost      *string             `json:"itemCost,omitempty"`
}

// GetExport handles GET /export.
// It returns a flat table with one row per line item across every trip.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid format"))
		return
	}
	wantCSV := format != nil && *format == "csv"
	if format != nil && !wantCSV && *format != "json" {
		writeJSON(w, http.StatusBadRequest, requestBody("format must be csv or json"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "export failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody())
		return
	}

	if wantCSV {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONResponse(rows))
}

// buildJSONResponse converts domain rows to the JSON response.
func buildJSONResponse(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToJSONRow(r))
	}
	return out
}

// writeCSV encodes domain rows as CSV.
// People within a row are pipe-separated ("|") to keep each item on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer.Write never returns an error.
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// domainRowToJSONRow maps a domain.ExportRow to its JSON form.
// Fields that are empty strings become nil pointers (omitempty in JSON).
func domainRowToJSONRow(r domain.ExportRow) ExportRow {
	row := ExportRow{
		TripId:       r.TripID,
		TripName:     r.TripName,
		People:       r.People,
		ItemKind:     optional(string(r.ItemKind)),
		ItemId:       optional(r.ItemID),
		ItemTitle:    optional(r.ItemTitle),
		ItemLocation: optional(r.ItemLocation),
		ItemWhen:     optional(r.ItemWhen),
		ItemCost:     optional(r.ItemCost),
	}
	if row.People == nil {
		row.People = []string{}
	}
	if d, ok := domain.ParseDate(r.TripStartDate); ok {
		row.TripStartDate = &openapi_types.Date{Time: d}
	}
	if r.TripDuration > 0 {
		row.TripDuration = &r.TripDuration
	}
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// A zero duration is encoded as an empty string.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	duration := ""
	if r.TripDuration > 0 {
		duration = strconv.Itoa(r.TripDuration)
	}
	return []string{
		r.TripID,
		r.TripName,
		r.TripStartDate,
		duration,
		strings.Join(r.People, "|"),
		string(r.ItemKind),
		r.ItemID,
		r.ItemTitle,
		r.ItemLocation,
		r.ItemWhen,
		r.ItemCost,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
