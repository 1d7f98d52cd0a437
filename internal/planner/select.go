package planner

import (
	"sort"

	"tripster/internal/domain"
)

// feeNorm is added to the entry fee when scoring so free attractions rank by
// rating alone instead of dividing by zero. One currency unit rather than a
// tiny epsilon, otherwise ordering among free entries would ride on float
// noise.
const feeNorm = 1.0

// SelectDay greedily picks attractions from one day's cluster under a time
// cap (hours) and a fee cap (currency units). Candidates are tried in
// descending rating-per-fee order, ties keeping input order; an attraction is
// taken iff it fits both remaining caps, with no backtracking. An empty
// result means a rest day.
func SelectDay(cluster []domain.Attraction, hoursCap, feeCap float64) []domain.Attraction {
	if len(cluster) == 0 || hoursCap <= 0 || feeCap < 0 {
		return nil
	}

	ranked := make([]domain.Attraction, len(cluster))
	copy(ranked, cluster)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})

	var picks []domain.Attraction
	var hours, fees float64
	for _, a := range ranked {
		if hours+a.Duration > hoursCap {
			continue
		}
		if fees+a.EntryFee > feeCap {
			continue
		}
		picks = append(picks, a)
		hours += a.Duration
		fees += a.EntryFee
	}
	return picks
}

func score(a domain.Attraction) float64 {
	return a.Rating / (a.EntryFee + feeNorm)
}

// TotalFees sums entry fees of a selection.
func TotalFees(picks []domain.Attraction) float64 {
	var s float64
	for _, a := range picks {
		s += a.EntryFee
	}
	return s
}
