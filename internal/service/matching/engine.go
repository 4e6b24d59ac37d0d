package matching

import (
	"fmt"
	"sort"

	"loadboard/internal/config"
	"loadboard/internal/domain"
)

// Scoring weights. Proximity dominates, utilization rewards near-full
// trucks, destination alignment is a bonus for avoiding an empty return.
const (
	weightProximity   = 45.0
	weightUtilization = 35.0
	weightDestination = 20.0
)

// Engine scores already-fetched candidate sets. It performs no I/O.
type Engine struct {
	cfg config.Matching
}

// NewEngine creates a new matching Engine.
func NewEngine(cfg config.Matching) *Engine {
	if cfg.DeadheadLimitKm <= 0 {
		cfg.DeadheadLimitKm = config.DefaultMatching().DeadheadLimitKm
	}
	if cfg.SoftDeadheadLimitKm <= 0 {
		cfg.SoftDeadheadLimitKm = config.DefaultMatching().SoftDeadheadLimitKm
	}
	if cfg.ExactThreshold <= 0 {
		cfg.ExactThreshold = config.DefaultMatching().ExactThreshold
	}
	return &Engine{cfg: cfg}
}

// MatchLoadsForTruck ranks the given loads for one truck.
func (e *Engine) MatchLoadsForTruck(tc TruckCandidate, loads []domain.Load, opts Options) []Match {
	matches := make([]Match, 0, len(loads))
	for _, load := range loads {
		if m, ok := e.score(tc, load); ok {
			matches = append(matches, m)
		}
	}
	return finalize(matches, opts)
}

// MatchTrucksForLoad ranks the given trucks for one load. The scoring
// function is shared with MatchLoadsForTruck, so both directions agree.
func (e *Engine) MatchTrucksForLoad(load domain.Load, trucks []TruckCandidate, opts Options) []Match {
	matches := make([]Match, 0, len(trucks))
	for _, tc := range trucks {
		if m, ok := e.score(tc, load); ok {
			matches = append(matches, m)
		}
	}
	return finalize(matches, opts)
}

// score evaluates one truck/load pair. Hard exclusions return ok=false:
// incompatible equipment group, weight over capacity, unknown cities, and
// deadhead-to-origin beyond the configured ceiling.
func (e *Engine) score(tc TruckCandidate, load domain.Load) (Match, bool) {
	if !Compatible(tc.Truck.Type, load.TruckType) {
		return Match{}, false
	}
	if tc.Truck.MaxWeightKg > 0 && load.WeightKg > tc.Truck.MaxWeightKg {
		return Match{}, false
	}

	dh, ok := CityDistanceKm(tc.Truck.CurrentCity, load.PickupCity)
	if !ok {
		return Match{}, false
	}
	if dh > e.cfg.DeadheadLimitKm {
		return Match{}, false
	}

	m := Match{
		LoadID:              load.ID,
		TruckID:             tc.Truck.ID,
		DeadheadKm:          dh,
		// Soft limit for UI warnings; the hard ceiling above already excluded
		// candidates past DeadheadLimitKm.
		WithinDeadheadLimit: dh <= e.cfg.SoftDeadheadLimitKm,
	}

	proximity := 1 - dh/e.cfg.DeadheadLimitKm
	m.Score += weightProximity * proximity
	if dh == 0 {
		m.Reasons = append(m.Reasons, "truck already at pickup city")
	} else {
		m.Reasons = append(m.Reasons, fmt.Sprintf("deadhead to origin %.0f km", dh))
	}

	utilization := 0.0
	if tc.Truck.MaxWeightKg > 0 {
		utilization = load.WeightKg / tc.Truck.MaxWeightKg
	}
	m.Score += weightUtilization * utilization
	if utilization >= 0.9 {
		m.Reasons = append(m.Reasons, "near-full capacity utilization")
	} else if utilization > 0 {
		m.Reasons = append(m.Reasons, fmt.Sprintf("capacity utilization %.0f%%", utilization*100))
	}

	if dest := e.destinationAlignment(tc, load); dest > 0 {
		m.Score += weightDestination * dest
		if dest == 1 {
			m.Reasons = append(m.Reasons, "destination matches truck's posted direction")
		}
	}

	if m.Score > 100 {
		m.Score = 100
	}
	if m.Score >= e.cfg.ExactThreshold {
		m.ExactMatch = true
		m.Reasons = append(m.Reasons, "excellent match")
	}
	return m, true
}

// destinationAlignment returns 1 for an exact destination match, a partial
// credit when the posted destination is near the load's delivery city, and
// half credit when the truck declared no destination at all.
func (e *Engine) destinationAlignment(tc TruckCandidate, load domain.Load) float64 {
	if tc.Posting == nil || tc.Posting.DestinationCity == "" {
		return 0.5
	}
	if NormalizeCity(tc.Posting.DestinationCity) == NormalizeCity(load.DeliveryCity) {
		return 1
	}
	dist, ok := CityDistanceKm(tc.Posting.DestinationCity, load.DeliveryCity)
	if !ok {
		return 0
	}
	if dist <= e.cfg.DeadheadLimitKm {
		return 1 - dist/(2*e.cfg.DeadheadLimitKm)
	}
	return 0
}

// finalize orders matches by score descending, breaking ties by deadhead
// ascending, then applies the MinScore post-filter.
func finalize(matches []Match, opts Options) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].DeadheadKm < matches[j].DeadheadKm
	})
	if opts.MinScore <= 0 {
		return matches
	}
	out := matches[:0]
	for _, m := range matches {
		if m.Score >= opts.MinScore {
			out = append(out, m)
		}
	}
	return out
}
