package matching

import "loadboard/internal/domain"

// TruckCandidate pairs a truck with its active availability posting, when
// one exists. The posting contributes the declared destination.
type TruckCandidate struct {
	Truck   domain.Truck
	Posting *domain.TruckPosting
}

// Match is one scored truck/load pairing. DeadheadKm is the empty distance
// from the truck's current city to the load's pickup city (DH-O).
// WithinDeadheadLimit is informational and independent of the hard cutoff.
type Match struct {
	LoadID              int64
	TruckID             int64
	Score               float64
	Reasons             []string
	DeadheadKm          float64
	WithinDeadheadLimit bool
	ExactMatch          bool
}

// Options tune a match query. MinScore is a post-filter applied after all
// candidates are scored, so reasons stay observable for rejected ones.
type Options struct {
	MinScore float64
}

// typeGroups partitions truck types into interchangeability groups. A truck
// can carry a load only when both types fall in the same group.
var typeGroups = map[domain.TruckType]string{
	domain.TruckFlatbed:      groupGeneral,
	domain.TruckDryVan:       groupGeneral,
	domain.TruckContainer:    groupGeneral,
	domain.TruckTautliner:    groupGeneral,
	domain.TruckRefrigerated: groupColdChain,
	domain.TruckReefer:       groupColdChain,
}

const (
	groupGeneral   = "GENERAL"
	groupColdChain = "COLD_CHAIN"
)

// Compatible reports whether the two types belong to the same group.
func Compatible(truckType, loadType domain.TruckType) bool {
	tg, ok := typeGroups[truckType]
	if !ok {
		return false
	}
	lg, ok := typeGroups[loadType]
	return ok && tg == lg
}
