//go:generate mockgen -source=service.go -destination=matching_mocks_test.go -package=matching

package matching

import (
	"context"
	"fmt"

	"loadboard/internal/apperr"
	"loadboard/internal/domain"
	"loadboard/internal/logx"
)

type boardRepository interface {
	GetLoad(ctx context.Context, loadID int64) (*domain.Load, error)
	ListOpenLoads(ctx context.Context) ([]domain.Load, error)
	ListAvailableTrucks(ctx context.Context) ([]domain.Truck, map[int64]domain.TruckPosting, error)
}

// Service answers board queries by feeding the current open loads and free
// trucks through the scoring engine. Results are advisory; any of them can
// lose the race by the time an assignment is attempted.
type Service struct {
	repo   boardRepository
	engine *Engine
	logger logx.Logger
}

// NewService creates a new matching Service.
func NewService(repo boardRepository, engine *Engine, logger logx.Logger) *Service {
	return &Service{repo: repo, engine: engine, logger: logger}
}

// MatchesForLoad ranks the available trucks against one load.
func (s *Service) MatchesForLoad(ctx context.Context, loadID int64, opts Options) ([]Match, error) {
	if loadID <= 0 {
		return nil, fmt.Errorf("%w: load id is required", apperr.ErrInvalid)
	}

	load, err := s.repo.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	if load == nil {
		return nil, fmt.Errorf("%w: load %d", apperr.ErrNotFound, loadID)
	}
	if !load.Status.Assignable() {
		return nil, fmt.Errorf("%w: load %d is %s, not open for matching", apperr.ErrInvalidState, load.ID, load.Status)
	}

	candidates, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}

	matches := s.engine.MatchTrucksForLoad(*load, candidates, opts)
	s.logger.Debug("matched trucks for load",
		logx.Int64("load_id", load.ID),
		logx.Int("candidates", len(candidates)),
		logx.Int("matches", len(matches)),
	)
	return matches, nil
}

// MatchesForTruck ranks the open loads against one free truck.
func (s *Service) MatchesForTruck(ctx context.Context, truckID int64, opts Options) ([]Match, error) {
	if truckID <= 0 {
		return nil, fmt.Errorf("%w: truck id is required", apperr.ErrInvalid)
	}

	candidates, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}
	var tc *TruckCandidate
	for i := range candidates {
		if candidates[i].Truck.ID == truckID {
			tc = &candidates[i]
			break
		}
	}
	if tc == nil {
		return nil, fmt.Errorf("%w: truck %d is not on the board", apperr.ErrNotFound, truckID)
	}

	loads, err := s.repo.ListOpenLoads(ctx)
	if err != nil {
		return nil, err
	}

	matches := s.engine.MatchLoadsForTruck(*tc, loads, opts)
	s.logger.Debug("matched loads for truck",
		logx.Int64("truck_id", truckID),
		logx.Int("open_loads", len(loads)),
		logx.Int("matches", len(matches)),
	)
	return matches, nil
}

func (s *Service) candidates(ctx context.Context) ([]TruckCandidate, error) {
	trucks, postings, err := s.repo.ListAvailableTrucks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TruckCandidate, 0, len(trucks))
	for _, t := range trucks {
		tc := TruckCandidate{Truck: t}
		if p, ok := postings[t.ID]; ok {
			posting := p
			tc.Posting = &posting
		}
		out = append(out, tc)
	}
	return out, nil
}
