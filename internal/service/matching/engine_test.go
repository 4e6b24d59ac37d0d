package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"loadboard/internal/config"
	"loadboard/internal/domain"
	"loadboard/internal/service/matching"
)

func newEngine() *matching.Engine {
	return matching.NewEngine(config.DefaultMatching())
}

func truckIn(city string, typ domain.TruckType, maxKg float64) matching.TruckCandidate {
	return matching.TruckCandidate{
		Truck: domain.Truck{
			ID:          1,
			Type:        typ,
			MaxWeightKg: maxKg,
			CurrentCity: city,
			IsAvailable: true,
		},
	}
}

func loadFromTo(pickup, delivery string, typ domain.TruckType, weightKg float64) domain.Load {
	return domain.Load{
		ID:           100,
		Status:       domain.LoadPosted,
		PickupCity:   pickup,
		DeliveryCity: delivery,
		TruckType:    typ,
		WeightKg:     weightKg,
	}
}

func TestCityDistance_SymmetricAcrossAliases(t *testing.T) {
	t.Parallel()

	d1, ok := matching.CityDistanceKm("Alma-Ata", "Taraz")
	require.True(t, ok)
	d2, ok := matching.CityDistanceKm("taraz", " ALMATY ")
	require.True(t, ok)
	require.InDelta(t, d1, d2, 0.001)
	require.Greater(t, d1, 0.0)
}

func TestScore_SameCityFullTruck(t *testing.T) {
	t.Parallel()

	e := newEngine()
	tc := truckIn("almaty", domain.TruckDryVan, 20000)
	load := loadFromTo("almaty", "astana", domain.TruckContainer, 19500)

	matches := e.MatchLoadsForTruck(tc, []domain.Load{load}, matching.Options{})
	require.Len(t, matches, 1)

	m := matches[0]
	require.Equal(t, load.ID, m.LoadID)
	require.Zero(t, m.DeadheadKm)
	require.True(t, m.WithinDeadheadLimit)
	require.True(t, m.ExactMatch)
	require.GreaterOrEqual(t, m.Score, 85.0)
	require.Contains(t, m.Reasons, "truck already at pickup city")
}

func TestScore_DeadheadCeilingExcludes(t *testing.T) {
	t.Parallel()

	e := newEngine()
	// Almaty to Astana is roughly 970 km straight-line, far past the 200 km
	// ceiling, so the candidate must be dropped regardless of score.
	tc := truckIn("astana", domain.TruckDryVan, 20000)
	load := loadFromTo("almaty", "astana", domain.TruckDryVan, 20000)

	matches := e.MatchLoadsForTruck(tc, []domain.Load{load}, matching.Options{})
	require.Empty(t, matches)
}

func TestScore_IncompatibleGroupExcludes(t *testing.T) {
	t.Parallel()

	e := newEngine()
	tc := truckIn("almaty", domain.TruckRefrigerated, 20000)
	general := loadFromTo("almaty", "taraz", domain.TruckFlatbed, 10000)
	coldChain := loadFromTo("almaty", "taraz", domain.TruckReefer, 10000)
	coldChain.ID = 101

	matches := e.MatchLoadsForTruck(tc, []domain.Load{general, coldChain}, matching.Options{})
	require.Len(t, matches, 1)
	require.Equal(t, int64(101), matches[0].LoadID)
}

func TestScore_OverweightExcludes(t *testing.T) {
	t.Parallel()

	e := newEngine()
	tc := truckIn("almaty", domain.TruckFlatbed, 10000)
	load := loadFromTo("almaty", "taraz", domain.TruckFlatbed, 10001)

	matches := e.MatchLoadsForTruck(tc, []domain.Load{load}, matching.Options{})
	require.Empty(t, matches)
}

func TestMatch_OrderingAndDeterminism(t *testing.T) {
	t.Parallel()

	e := newEngine()
	load := loadFromTo("shymkent", "almaty", domain.TruckDryVan, 15000)

	trucks := []matching.TruckCandidate{
		truckIn("shymkent", domain.TruckDryVan, 16000),
		truckIn("turkistan", domain.TruckDryVan, 16000),
		truckIn("shymkent", domain.TruckDryVan, 40000),
	}
	trucks[0].Truck.ID = 1
	trucks[1].Truck.ID = 2
	trucks[2].Truck.ID = 3

	first := e.MatchTrucksForLoad(load, trucks, matching.Options{})
	require.NotEmpty(t, first)
	for i := 1; i < len(first); i++ {
		require.GreaterOrEqual(t, first[i-1].Score, first[i].Score)
	}
	// Near-full 16t truck in town beats the half-empty 40t one.
	require.Equal(t, int64(1), first[0].TruckID)

	second := e.MatchTrucksForLoad(load, trucks, matching.Options{})
	require.Equal(t, first, second)
}

func TestMatch_MinScoreIsPostFilter(t *testing.T) {
	t.Parallel()

	e := newEngine()
	load := loadFromTo("shymkent", "almaty", domain.TruckDryVan, 15000)
	trucks := []matching.TruckCandidate{
		truckIn("shymkent", domain.TruckDryVan, 16000),
		truckIn("turkistan", domain.TruckDryVan, 40000),
	}

	all := e.MatchTrucksForLoad(load, trucks, matching.Options{})
	require.Len(t, all, 2)

	filtered := e.MatchTrucksForLoad(load, trucks, matching.Options{MinScore: all[0].Score})
	require.Len(t, filtered, 1)
	require.Equal(t, all[0].Score, filtered[0].Score)
}

func TestMatch_DestinationAlignmentRewarded(t *testing.T) {
	t.Parallel()

	e := newEngine()
	load := loadFromTo("shymkent", "almaty", domain.TruckDryVan, 15000)

	aligned := truckIn("shymkent", domain.TruckDryVan, 16000)
	aligned.Truck.ID = 1
	aligned.Posting = &domain.TruckPosting{TruckID: 1, Status: domain.PostingActive, DestinationCity: "Almaty"}

	opposite := truckIn("shymkent", domain.TruckDryVan, 16000)
	opposite.Truck.ID = 2
	opposite.Posting = &domain.TruckPosting{TruckID: 2, Status: domain.PostingActive, DestinationCity: "Atyrau"}

	matches := e.MatchTrucksForLoad(load, []matching.TruckCandidate{opposite, aligned}, matching.Options{})
	require.Len(t, matches, 2)
	require.Equal(t, int64(1), matches[0].TruckID)
	require.Greater(t, matches[0].Score, matches[1].Score)
}

func TestMatch_SoftDeadheadFlagIndependent(t *testing.T) {
	t.Parallel()

	e := matching.NewEngine(config.Matching{
		DeadheadLimitKm:     200,
		SoftDeadheadLimitKm: 100,
		ExactThreshold:      85,
	})
	// Shymkent to Turkistan is between the soft and hard limits, so the
	// candidate survives the cutoff but carries the warning flag.
	tc := truckIn("turkistan", domain.TruckDryVan, 16000)
	load := loadFromTo("shymkent", "almaty", domain.TruckDryVan, 15000)

	matches := e.MatchLoadsForTruck(tc, []domain.Load{load}, matching.Options{})
	require.Len(t, matches, 1)
	require.False(t, matches[0].WithinDeadheadLimit)
	require.Greater(t, matches[0].DeadheadKm, 100.0)
	require.Less(t, matches[0].DeadheadKm, 200.0)
}
