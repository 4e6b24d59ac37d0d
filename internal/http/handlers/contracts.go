package handlers

import (
	"context"

	"loadboard/internal/domain"
	"loadboard/internal/identity"
	"loadboard/internal/service/assignment"
	"loadboard/internal/service/matching"
	"loadboard/internal/service/offers"
	"loadboard/internal/service/settlement"
)

type assignUsecase interface {
	Assign(ctx context.Context, cmd assignment.AssignCommand) (domain.AssignResult, error)
	Unassign(ctx context.Context, cmd assignment.UnassignCommand) (domain.UnassignResult, error)
	ChangeStatus(ctx context.Context, cmd assignment.ChangeStatusCommand) (*domain.Load, error)
}

// NewAssignUsecase wires the Coordinator into an assignUsecase.
func NewAssignUsecase(c *assignment.Coordinator) assignUsecase {
	return c
}

type offerUsecase interface {
	Create(ctx context.Context, cmd offers.CreateCommand) (*domain.Offer, error)
	Approve(ctx context.Context, cmd offers.ResolveCommand) (domain.ResolveResult, error)
	Reject(ctx context.Context, cmd offers.ResolveCommand) (domain.ResolveResult, error)
	Cancel(ctx context.Context, cmd offers.ResolveCommand) (domain.ResolveResult, error)
	ListByLoad(ctx context.Context, loadID int64) ([]domain.Offer, error)
}

// NewOfferUsecase wires the offer Service into an offerUsecase.
func NewOfferUsecase(s *offers.Service) offerUsecase {
	return s
}

type matchUsecase interface {
	MatchesForLoad(ctx context.Context, loadID int64, opts matching.Options) ([]matching.Match, error)
	MatchesForTruck(ctx context.Context, truckID int64, opts matching.Options) ([]matching.Match, error)
}

// NewMatchUsecase wires the matching Service into a matchUsecase.
func NewMatchUsecase(s *matching.Service) matchUsecase {
	return s
}

type settleUsecase interface {
	Approve(ctx context.Context, loadID int64, actor identity.Actor) error
}

// NewSettleUsecase wires the settlement Service into a settleUsecase.
func NewSettleUsecase(s *settlement.Service) settleUsecase {
	return s
}
