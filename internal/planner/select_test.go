package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripster/internal/domain"
	"tripster/internal/planner"
)

func sight(id string, fee, hours, rating float64) domain.Attraction {
	return domain.Attraction{ID: id, Name: id, EntryFee: fee, Duration: hours, Rating: rating}
}

func TestSelectDayRespectsBothCaps(t *testing.T) {
	cluster := []domain.Attraction{
		sight("a", 0, 2, 4.5),
		sight("b", 150, 2, 4.2),
		sight("c", 400, 3, 4.7),
		sight("d", 1200, 5, 4.5),
		sight("e", 50, 1.5, 4.3),
	}

	for _, tc := range []struct {
		name     string
		hoursCap float64
		feeCap   float64
	}{
		{"roomy", 6, 1000},
		{"tight-time", 3, 1000},
		{"tight-fee", 6, 100},
		{"both-tight", 2, 50},
	} {
		t.Run(tc.name, func(t *testing.T) {
			picks := planner.SelectDay(cluster, tc.hoursCap, tc.feeCap)
			var hours, fees float64
			for _, p := range picks {
				hours += p.Duration
				fees += p.EntryFee
			}
			assert.LessOrEqual(t, hours, tc.hoursCap)
			assert.LessOrEqual(t, fees, tc.feeCap)
		})
	}
}

func TestSelectDayPrefersRatingPerFee(t *testing.T) {
	cluster := []domain.Attraction{
		sight("pricey", 900, 1, 4.9),
		sight("free", 0, 1, 4.0),
	}
	picks := planner.SelectDay(cluster, 6, 1000)
	require.NotEmpty(t, picks)
	// 4.0/1 beats 4.9/901, so the free attraction leads
	assert.Equal(t, "free", picks[0].ID)
}

func TestSelectDaySkipsAndContinues(t *testing.T) {
	// "free-long" is taken first, "free-too-long" would exceed the time
	// cap and is skipped, "free-short" still fits.
	cluster := []domain.Attraction{
		sight("free-long", 0, 5, 5),
		sight("free-too-long", 0, 3, 5),
		sight("free-short", 0, 1, 4),
	}
	picks := planner.SelectDay(cluster, 6, 0)
	ids := make([]string, 0, len(picks))
	for _, p := range picks {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"free-long", "free-short"}, ids)
}

func TestSelectDayRestDayWhenNothingFits(t *testing.T) {
	cluster := []domain.Attraction{sight("expensive", 5000, 2, 4.8)}
	picks := planner.SelectDay(cluster, 6, 1000)
	assert.Empty(t, picks)
}

func TestSelectDayZeroCaps(t *testing.T) {
	cluster := []domain.Attraction{sight("a", 0, 1, 4)}

	assert.Empty(t, planner.SelectDay(cluster, 0, 100), "no time means no activities")

	// zero fee cap still admits free attractions
	picks := planner.SelectDay(cluster, 6, 0)
	require.Len(t, picks, 1)
	assert.Equal(t, "a", picks[0].ID)
}

func TestSelectDayEmptyCluster(t *testing.T) {
	assert.Empty(t, planner.SelectDay(nil, 6, 1000))
}
