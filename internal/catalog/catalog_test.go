package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripster/internal/catalog"
	"tripster/internal/domain"
)

func loadTestdata(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.Load(context.Background(), "testdata")
	require.NoError(t, err)
	return s
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	s := loadTestdata(t)

	for _, name := range []string{"Pune", "pune", "PUNE", " pune "} {
		cat, err := s.Lookup(context.Background(), name)
		require.NoErrorf(t, err, "lookup %q", name)
		assert.Equal(t, "Pune", cat.Destination)
	}
}

func TestLookupUnknownDestination(t *testing.T) {
	s := loadTestdata(t)
	_, err := s.Lookup(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestNormalizationClampsFields(t *testing.T) {
	s := loadTestdata(t)
	cat, err := s.Lookup(context.Background(), "pune")
	require.NoError(t, err)
	require.Len(t, cat.Attractions, 2)

	fort := cat.Attractions[0]
	assert.Equal(t, "Hilltop Fort", fort.Name)
	assert.Equal(t, 0.0, fort.EntryFee, "negative fee normalized to free")
	assert.Equal(t, 2.0, fort.Duration, "missing duration gets the default")
	assert.Equal(t, 5.0, fort.Rating, "rating clamped to 5")

	garden := cat.Attractions[1]
	assert.Equal(t, 3.0, garden.Rating, "absent rating becomes neutral")
	assert.Equal(t, "Pune", garden.Destination)
}

func TestDestinationsSummary(t *testing.T) {
	s := loadTestdata(t)
	sums, err := s.Destinations(context.Background())
	require.NoError(t, err)
	require.Len(t, sums, 1)

	assert.Equal(t, domain.DestinationSummary{
		Name:        "Pune",
		Attractions: 2,
		Hotels:      1,
		Restaurants: 1,
	}, sums[0])
}

func TestLoadMissingDir(t *testing.T) {
	_, err := catalog.Load(context.Background(), "testdata/does-not-exist")
	assert.Error(t, err)
}
