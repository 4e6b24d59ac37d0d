package matching

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

type coord struct {
	lat, lng float64
}

// cityCoords holds the coordinates of cities the marketplace operates in.
// Distances between them resolve through the haversine formula.
var cityCoords = map[string]coord{
	"almaty":      {43.2389, 76.8897},
	"astana":      {51.1605, 71.4704},
	"shymkent":    {42.3417, 69.5901},
	"karaganda":   {49.8047, 73.1094},
	"aktobe":      {50.2839, 57.1670},
	"taraz":       {42.9000, 71.3667},
	"pavlodar":    {52.2873, 76.9674},
	"oskemen":     {49.9484, 82.6279},
	"semey":       {50.4111, 80.2275},
	"atyrau":      {47.1164, 51.8833},
	"kostanay":    {53.2144, 63.6246},
	"kyzylorda":   {44.8488, 65.4823},
	"oral":        {51.2333, 51.3667},
	"petropavl":   {54.8753, 69.1628},
	"aktau":       {43.6410, 51.1722},
	"turkistan":   {43.3019, 68.2692},
	"taldykorgan": {45.0156, 78.3735},
	"kokshetau":   {53.2833, 69.3833},
}

// cityAliases folds common spelling variants onto the canonical key, so the
// same distance lookup resolves in both query directions.
var cityAliases = map[string]string{
	"alma-ata":         "almaty",
	"nur-sultan":       "astana",
	"nursultan":        "astana",
	"chimkent":         "shymkent",
	"karagandy":        "karaganda",
	"qaraghandy":       "karaganda",
	"ust-kamenogorsk":  "oskemen",
	"semipalatinsk":    "semey",
	"uralsk":           "oral",
	"petropavlovsk":    "petropavl",
	"dzhambul":         "taraz",
	"turkestan":        "turkistan",
}

// NormalizeCity returns the canonical lookup key for a city name.
func NormalizeCity(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Join(strings.Fields(key), " ")
	if canonical, ok := cityAliases[key]; ok {
		return canonical
	}
	return key
}

// CityDistanceKm returns the great-circle distance between two cities.
// The second return is false when either city is unknown.
func CityDistanceKm(a, b string) (float64, bool) {
	ca, ok := cityCoords[NormalizeCity(a)]
	if !ok {
		return 0, false
	}
	cb, ok := cityCoords[NormalizeCity(b)]
	if !ok {
		return 0, false
	}
	return haversineKm(ca.lat, ca.lng, cb.lat, cb.lng), true
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
