package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		lat    float64
		lng    float64
		parsed bool
	}{
		{"exact format", "LAT: 40.7128, LNG: -74.0060", 40.7128, -74.0060, true},
		{"lowercase and extra text", "Sure! lat:40.72 , lng: -73.9 is the spot", 40.72, -73.9, true},
		{"integers", "LAT: 41, LNG: -73", 41, -73, true},
		{"no spaces", "LAT:40.1,LNG:-73.2", 40.1, -73.2, true},
		{"missing longitude", "LAT: 40.7128", 0, 0, false},
		{"missing latitude", "LNG: -74.0060", 0, 0, false},
		{"not a number", "LAT: north, LNG: west", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, ok := ParseCoordinates(tt.text)
			assert.Equal(t, tt.parsed, ok)
			assert.Equal(t, tt.lat, lat)
			assert.Equal(t, tt.lng, lng)
		})
	}
}

func TestLocationFromText(t *testing.T) {
	citations := []string{
		"https://example.com/about",
		"https://www.google.com/maps/place/?q=place_id:abc",
		"https://www.google.com/maps/place/?q=place_id:def",
	}

	loc, ok := LocationFromText("LAT: 40.7128, LNG: -74.0060", citations)
	require.True(t, ok)
	assert.Equal(t, 40.7128, loc.Latitude)
	assert.Equal(t, -74.0060, loc.Longitude)
	assert.Equal(t, citations[1], loc.GoogleMapsURL)

	loc, ok = LocationFromText("I could not find that address.", citations)
	require.False(t, ok)
	assert.Equal(t, 40.715, loc.Latitude)
	assert.Equal(t, -73.880, loc.Longitude)
	assert.Empty(t, loc.GoogleMapsURL)
}

func TestExtractMapsURL_None(t *testing.T) {
	assert.Empty(t, ExtractMapsURL(nil))
	assert.Empty(t, ExtractMapsURL([]string{"https://nyc.gov"}))
}
