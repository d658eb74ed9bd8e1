package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelplanner/internal/domain"
)

func tripFixture() domain.Trip {
	return domain.Trip{
		SchemaVersion: domain.SchemaVersion,
		ID:            "3f1c3a1e-8d0b-4a57-9d55-1b0f2b9c6a10",
		Name:          "Paris",
		StartDate:     "2025-06-01",
		Duration:      5,
		Type:          "City break",
		People:        []string{"Ann", "Bo"},
		Notes:         "Bring an umbrella",
		TravelItems:   []domain.TravelItem{{ID: "t1", From: "NYC", To: "CDG", Duration: "7h", Cost: "540"}},
		HotelItems:    []domain.HotelItem{{ID: "h1", Name: "Le Petit", Location: "Marais"}},
		EventItems:    []domain.EventItem{{ID: "e1", Name: "Louvre", Place: "Rue de Rivoli", Time: "2025-06-02T10:00"}},
		CreatedAt:     time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestTrip_JSONRoundTrip(t *testing.T) {
	in := []domain.Trip{tripFixture(), domain.Trip{ID: "empty", Name: "Bare"}.Normalize()}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out []domain.Trip
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Equal(t, in, out)
}

func TestTrip_Unmarshal_LegacyDateAndPeople(t *testing.T) {
	const legacy = `{
		"id": "trip-1717000000000",
		"name": "Paris",
		"date": "2025-06-01",
		"people": ["Ann", " ", "Bo"],
		"travelItems": [{"id": 1717000000123, "from": "NYC", "to": "LAX", "cost": "", "duration": "5h"}],
		"createdAt": "2025-05-01T09:30:00Z"
	}`

	var got domain.Trip
	require.NoError(t, json.Unmarshal([]byte(legacy), &got))

	assert.Equal(t, domain.SchemaVersion, got.SchemaVersion)
	assert.Equal(t, "2025-06-01", got.StartDate)
	assert.Equal(t, []string{"Ann", "Bo"}, got.People)
	require.Len(t, got.TravelItems, 1)
	assert.Equal(t, domain.ItemID("1717000000123"), got.TravelItems[0].ID)
	assert.NotNil(t, got.HotelItems, "missing item lists decode as empty, not nil")
	assert.NotNil(t, got.EventItems)
}

func TestTrip_Unmarshal_LegacyMembersString(t *testing.T) {
	const legacy = `{"id":"x","name":"Ski","startDate":"2025-01-10","duration":"4","type":"Ski","members":"Ann, Bo ,,Cy"}`

	var got domain.Trip
	require.NoError(t, json.Unmarshal([]byte(legacy), &got))

	assert.Equal(t, []string{"Ann", "Bo", "Cy"}, got.People)
	assert.Equal(t, 4, got.Duration)
	assert.Equal(t, "Ski", got.Type)
}

func TestTrip_Unmarshal_LegacyMembersArray(t *testing.T) {
	var got domain.Trip
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","name":"Ski","members":["Ann",""]}`), &got))

	assert.Equal(t, []string{"Ann"}, got.People)
}

func TestTrip_Unmarshal_BadDurationIsZero(t *testing.T) {
	var got domain.Trip
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","name":"n","duration":"a week"}`), &got))

	assert.Zero(t, got.Duration)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-06-01", true, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{" 2025-06-01 ", true, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-06-01T00:00:00Z", true, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"2025-13-01", false, time.Time{}},
		{"next tuesday", false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := domain.ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestCleanNames(t *testing.T) {
	assert.Equal(t, []string{"Ann", "Bo"}, domain.CleanNames([]string{" Ann", "", "  ", "Bo "}))
	assert.Equal(t, []string{}, domain.CleanNames(nil))
}
