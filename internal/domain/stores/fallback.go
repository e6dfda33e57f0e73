package stores

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// nearbyCityRadius is how close a coordinate must be to a known city centre
// for its curated listings to be used, roughly 55 km.
const nearbyCityRadius = 0.5 * s1.Degree

type knownCity struct {
	key    string
	center s2.LatLng
	places []Place
}

func ratingPtr(v float64) *float64 { return &v }

func openPtr(v bool) *bool { return &v }

func curated(id, name, vicinity string, rating float64, total int, lat, lng float64) Place {
	return Place{
		PlaceID:          id,
		Name:             name,
		Vicinity:         vicinity,
		Rating:           ratingPtr(rating),
		UserRatingsTotal: total,
		Lat:              lat,
		Lng:              lng,
		OpenNow:          openPtr(true),
		BusinessStatus:   "OPERATIONAL",
	}
}

var knownCities = []knownCity{
	{
		key:    "san_francisco",
		center: s2.LatLngFromDegrees(37.77, -122.41),
		places: []Place{
			curated("mock_san_francisco_1", "Glass Key Photo", "1230 Sutter St, San Francisco, CA 94109", 4.7, 178, 37.788, -122.421),
			curated("mock_san_francisco_2", "Photoworks SF", "2077 Market St, San Francisco, CA 94114", 4.8, 225, 37.769, -122.429),
			curated("mock_san_francisco_3", "Camera Heaven", "458 Geary St, San Francisco, CA 94102", 4.4, 97, 37.787, -122.410),
			curated("mock_san_francisco_4", "Samy's Camera", "1090 Bryant St, San Francisco, CA 94103", 4.5, 354, 37.770, -122.407),
			curated("mock_san_francisco_5", "Looking Glass Photo & Camera", "1045 Ashby Ave, Berkeley, CA 94710", 4.9, 412, 37.853, -122.289),
		},
	},
	{
		key:    "new_york",
		center: s2.LatLngFromDegrees(40.71, -74.00),
		places: []Place{
			curated("mock_new_york_1", "B&H Photo Video", "420 9th Ave, New York, NY 10001", 4.8, 23854, 40.754, -73.996),
			curated("mock_new_york_2", "K&M Camera", "368 Broadway, New York, NY 10013", 4.7, 205, 40.718, -74.003),
			curated("mock_new_york_3", "Adorama", "42 W 18th St, New York, NY 10011", 4.6, 5673, 40.740, -73.993),
		},
	},
	{
		key:    "london",
		center: s2.LatLngFromDegrees(51.50, -0.12),
		places: []Place{
			curated("mock_london_1", "Aperture Photographic", "27 Rathbone Pl, London W1T 1JE", 4.5, 124, 51.517, -0.135),
			curated("mock_london_2", "London Camera Exchange", "98 Strand, London WC2R 0AG", 4.6, 321, 51.511, -0.120),
			curated("mock_london_3", "Silverprint", "120 London Rd, London SE1 6LF", 4.7, 187, 51.498, -0.106),
		},
	},
}

// nearestCity returns the closest known city within nearbyCityRadius.
func nearestCity(lat, lng float64) (knownCity, bool) {
	point := s2.LatLngFromDegrees(lat, lng)
	var (
		best     knownCity
		bestDist s1.Angle
		found    bool
	)
	for _, city := range knownCities {
		d := point.Distance(city.center)
		if !found || d < bestDist {
			best, bestDist, found = city, d, true
		}
	}
	if !found || bestDist >= nearbyCityRadius {
		return knownCity{}, false
	}
	return best, true
}

// fallbackPlaces serves curated listings near a known city and generic ones elsewhere.
func fallbackPlaces(lat, lng float64) []Place {
	if city, ok := nearestCity(lat, lng); ok {
		out := make([]Place, len(city.places))
		copy(out, city.places)
		return out
	}
	return genericPlaces(lat, lng)
}

func genericPlaces(lat, lng float64) []Place {
	return []Place{
		curated("mock_place_1", "Downtown Camera Store", "123 Photography Lane", 4.7, 156, lat+0.002, lng+0.001),
		curated("mock_place_2", "Film Developer Pro", "456 Camera Street", 4.5, 89, lat-0.001, lng+0.003),
		curated("mock_place_3", "Vintage Film Supply", "789 Lens Avenue", 4.8, 212, lat+0.004, lng-0.002),
		curated("mock_place_4", "Classic Photography", "321 Shutter Road", 4.2, 67, lat-0.003, lng-0.001),
		curated("mock_place_5", "Analog Film Lab", "555 Exposure Boulevard", 4.6, 103, lat+0.001, lng-0.004),
		curated("mock_place_6", "Film Roll Shop", "987 Aperture Drive", 4.4, 78, lat-0.002, lng+0.002),
	}
}
