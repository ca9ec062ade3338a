package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shenikar/infra_vision/internal/models"
)

// DefaultCenter - центр наблюдаемого округа, используется когда координаты не удалось получить
var DefaultCenter = models.Location{Latitude: 40.715, Longitude: -73.880}

const mapsURLMarker = "google.com/maps"

var (
	latPattern = regexp.MustCompile(`(?i)LAT:\s*(-?\d+(\.\d+)?)`)
	lngPattern = regexp.MustCompile(`(?i)LNG:\s*(-?\d+(\.\d+)?)`)
)

// ParseCoordinates извлекает широту и долготу из ответа вида "LAT: <число>, LNG: <число>"
func ParseCoordinates(text string) (lat, lng float64, ok bool) {
	latMatch := latPattern.FindStringSubmatch(text)
	lngMatch := lngPattern.FindStringSubmatch(text)
	if latMatch == nil || lngMatch == nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(lngMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// LocationFromText собирает Location из текста ответа; при неудаче возвращает DefaultCenter.
// Второе значение сообщает, удалось ли разобрать координаты.
func LocationFromText(text string, citations []string) (*models.Location, bool) {
	lat, lng, ok := ParseCoordinates(text)
	if !ok {
		loc := DefaultCenter
		return &loc, false
	}
	return &models.Location{
		Latitude:      lat,
		Longitude:     lng,
		GoogleMapsURL: ExtractMapsURL(citations),
	}, true
}

// ExtractMapsURL возвращает первую ссылку на карты среди ссылок grounding
func ExtractMapsURL(citations []string) string {
	for _, uri := range citations {
		if strings.Contains(uri, mapsURLMarker) {
			return uri
		}
	}
	return ""
}
