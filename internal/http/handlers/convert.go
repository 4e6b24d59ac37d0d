package handlers

import (
	"loadboard/internal/domain"
	"loadboard/internal/service/matching"
)

func assignResultToResponse(res domain.AssignResult) assignResultDTO {
	return assignResultDTO{
		LoadID:          res.LoadID,
		TruckID:         res.TruckID,
		TripID:          res.TripID,
		CancelledOffers: res.CancelledOffers,
		Warnings:        res.Warnings,
	}
}

func unassignResultToResponse(res domain.UnassignResult) unassignResultDTO {
	return unassignResultDTO{
		LoadID:   res.LoadID,
		TruckID:  res.TruckID,
		Status:   string(res.Status),
		Refunded: res.Refunded,
	}
}

func loadToResponse(l *domain.Load) loadDTO {
	return loadDTO{
		ID:               l.ID,
		Status:           string(l.Status),
		AssignedTruckID:  l.AssignedTruckID,
		PickupCity:       l.PickupCity,
		DeliveryCity:     l.DeliveryCity,
		TruckType:        string(l.TruckType),
		WeightKg:         l.WeightKg,
		PriceMinor:       l.PriceMinor,
		PodVerified:      l.PodVerified,
		SettlementStatus: string(l.SettlementStatus),
	}
}

func offerToResponse(o domain.Offer) offerDTO {
	return offerDTO{
		ID:        o.ID,
		Kind:      string(o.Kind),
		LoadID:    o.LoadID,
		TruckID:   o.TruckID,
		Status:    string(o.Status),
		CreatedBy: o.CreatedBy,
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
	}
}

func offersToResponse(list []domain.Offer) []offerDTO {
	out := make([]offerDTO, 0, len(list))
	for _, o := range list {
		out = append(out, offerToResponse(o))
	}
	return out
}

func resolveResultToResponse(res domain.ResolveResult) resolveResultDTO {
	dto := resolveResultDTO{
		Offer:           offerToResponse(res.Offer),
		AlreadyResolved: res.AlreadyResolved,
	}
	if res.Assignment != nil {
		a := assignResultToResponse(*res.Assignment)
		dto.Assignment = &a
	}
	return dto
}

func matchesToResponse(list []matching.Match) []matchDTO {
	out := make([]matchDTO, 0, len(list))
	for _, m := range list {
		out = append(out, matchDTO{
			LoadID:              m.LoadID,
			TruckID:             m.TruckID,
			Score:               m.Score,
			Reasons:             m.Reasons,
			DeadheadKm:          m.DeadheadKm,
			WithinDeadheadLimit: m.WithinDeadheadLimit,
			ExactMatch:          m.ExactMatch,
		})
	}
	return out
}
