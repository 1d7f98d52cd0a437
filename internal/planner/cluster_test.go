package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripster/internal/domain"
	"tripster/internal/planner"
)

func attraction(id string, lat, lng float64) domain.Attraction {
	return domain.Attraction{ID: id, Name: id, Lat: lat, Lng: lng, Rating: 4, Duration: 1.5, EntryFee: 100}
}

// two tight geographic blobs plus an outlier
func testAttractions() []domain.Attraction {
	return []domain.Attraction{
		attraction("north-1", 15.55, 73.75),
		attraction("north-2", 15.56, 73.76),
		attraction("north-3", 15.54, 73.74),
		attraction("south-1", 15.01, 74.02),
		attraction("south-2", 15.02, 74.03),
		attraction("south-3", 15.00, 74.01),
		attraction("east-1", 15.31, 74.31),
	}
}

func TestClusterPartitionsInput(t *testing.T) {
	in := testAttractions()
	groups := planner.Cluster(in, 3)

	require.Len(t, groups, 3)

	seen := map[string]int{}
	total := 0
	for _, g := range groups {
		for _, a := range g {
			seen[a.ID]++
			total++
		}
	}
	assert.Equal(t, len(in), total, "every attraction assigned exactly once")
	for id, n := range seen {
		assert.Equalf(t, 1, n, "attraction %s assigned %d times", id, n)
	}
}

func TestClusterGroupsAreSpatiallyCoherent(t *testing.T) {
	groups := planner.Cluster(testAttractions(), 3)

	// each blob should land in a single group
	groupOf := map[string]int{}
	for gi, g := range groups {
		for _, a := range g {
			groupOf[a.ID] = gi
		}
	}
	assert.Equal(t, groupOf["north-1"], groupOf["north-2"])
	assert.Equal(t, groupOf["north-1"], groupOf["north-3"])
	assert.Equal(t, groupOf["south-1"], groupOf["south-2"])
	assert.Equal(t, groupOf["south-1"], groupOf["south-3"])
	assert.NotEqual(t, groupOf["north-1"], groupOf["south-1"])
}

func TestClusterFewerAttractionsThanDays(t *testing.T) {
	in := testAttractions()[:2]
	groups := planner.Cluster(in, 5)

	require.Len(t, groups, 5)
	nonEmpty := 0
	for _, g := range groups {
		if len(g) > 0 {
			require.Len(t, g, 1)
			nonEmpty++
		}
	}
	assert.Equal(t, 2, nonEmpty, "each attraction gets its own day, the rest stay empty")
}

func TestClusterSingleDay(t *testing.T) {
	in := testAttractions()
	groups := planner.Cluster(in, 1)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], len(in))
}

func TestClusterDeterministic(t *testing.T) {
	a := planner.Cluster(testAttractions(), 3)
	b := planner.Cluster(testAttractions(), 3)
	assert.Equal(t, a, b)
}

func TestClusterEmptyInput(t *testing.T) {
	groups := planner.Cluster(nil, 3)
	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Empty(t, g)
	}
}
