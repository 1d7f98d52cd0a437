package planner

import (
	"sort"

	"tripster/internal/domain"
)

// maxClusterIterations caps the assignment/update loop so clustering always
// terminates even on pathological inputs.
const maxClusterIterations = 50

// Cluster partitions attractions into `days` geographic groups over their
// (lat, lng) coordinates using iterative centroid refinement. The output
// always has exactly `days` groups; together they partition the input.
//
// Determinism: the input is first ordered by latitude (then longitude, then
// id), centroids are seeded at evenly spaced picks from that ordering, and
// distance ties assign to the lower-indexed centroid. Identical input and
// `days` therefore always produce identical groups.
//
// When the input has fewer attractions than days, each attraction gets its
// own group and the remaining groups stay empty (downstream treats an empty
// group as a rest day).
func Cluster(attractions []domain.Attraction, days int) [][]domain.Attraction {
	if days < 1 {
		days = 1
	}
	groups := make([][]domain.Attraction, days)

	pts := make([]domain.Attraction, len(attractions))
	copy(pts, attractions)
	sort.SliceStable(pts, func(i, j int) bool {
		if pts[i].Lat != pts[j].Lat {
			return pts[i].Lat < pts[j].Lat
		}
		if pts[i].Lng != pts[j].Lng {
			return pts[i].Lng < pts[j].Lng
		}
		return pts[i].ID < pts[j].ID
	})

	if len(pts) <= days {
		for i, a := range pts {
			groups[i] = []domain.Attraction{a}
		}
		return groups
	}

	// Seed centroids at evenly spaced picks from the latitude-sorted input.
	centroids := make([]domain.Coords, days)
	for i := 0; i < days; i++ {
		p := pts[i*len(pts)/days]
		centroids[i] = domain.Coords{Lat: p.Lat, Lng: p.Lng}
	}

	assign := make([]int, len(pts))
	for i := range assign {
		assign[i] = -1
	}

	for iter := 0; iter < maxClusterIterations; iter++ {
		changed := false
		for i, a := range pts {
			best, bestDist := 0, sqDist(a.Lat, a.Lng, centroids[0])
			for c := 1; c < days; c++ {
				// strict < keeps equal distances on the lower index
				if d := sqDist(a.Lat, a.Lng, centroids[c]); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		// Recompute centroids; an emptied cluster keeps its old centroid.
		sumLat := make([]float64, days)
		sumLng := make([]float64, days)
		count := make([]int, days)
		for i, a := range pts {
			c := assign[i]
			sumLat[c] += a.Lat
			sumLng[c] += a.Lng
			count[c]++
		}
		for c := 0; c < days; c++ {
			if count[c] > 0 {
				centroids[c] = domain.Coords{Lat: sumLat[c] / float64(count[c]), Lng: sumLng[c] / float64(count[c])}
			}
		}
	}

	for i, a := range pts {
		c := assign[i]
		groups[c] = append(groups[c], a)
	}
	return groups
}

func sqDist(lat, lng float64, c domain.Coords) float64 {
	dLat := lat - c.Lat
	dLng := lng - c.Lng
	return dLat*dLat + dLng*dLng
}
