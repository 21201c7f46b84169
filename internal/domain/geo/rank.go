package geo

import (
	"math"
	"sort"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

const earthRadiusKm = 6371.0

type RankedGarage struct {
	Garage     *entity.Garage
	DistanceKm float64
}

// HaversineKm returns the great-circle distance in kilometres between two
// (longitude, latitude) points.
func HaversineKm(from, to entity.Location) float64 {
	lat1 := from.Latitude() * math.Pi / 180
	lat2 := to.Latitude() * math.Pi / 180
	dLat := (to.Latitude() - from.Latitude()) * math.Pi / 180
	dLon := (to.Longitude() - from.Longitude()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Rank orders candidates by distance from origin, ascending. Candidates
// with out-of-range coordinates are skipped rather than reported as errors.
// The sort is stable so equidistant garages keep their input order.
func Rank(origin entity.Location, candidates []*entity.Garage) []RankedGarage {
	ranked := make([]RankedGarage, 0, len(candidates))
	for _, g := range candidates {
		if g == nil || g.Location().Validate() != nil {
			continue
		}
		ranked = append(ranked, RankedGarage{
			Garage:     g,
			DistanceKm: HaversineKm(origin, g.Location()),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}
