package handlers

import (
	"net/http"
	"strconv"

	"loadboard/internal/logx"
	"loadboard/internal/service/matching"
)

// MatchHandler handles HTTP requests for board match queries.
type MatchHandler struct {
	usecase matchUsecase
	logger  logx.Logger
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(logger logx.Logger, uc matchUsecase) *MatchHandler {
	return &MatchHandler{usecase: uc, logger: logger}
}

// ForLoad handles GET /loads/{id}/matches.
// @Summary Rank available trucks for a load
// @Tags matches
// @Produce json
// @Param id path int true "Load ID"
// @Param min_score query number false "Post-filter on score"
// @Success 200 {array} matchDTO
// @Failure 422 {object} ErrorResponse "load not open for matching"
// @Router /loads/{id}/matches [get]
func (h *MatchHandler) ForLoad(w http.ResponseWriter, r *http.Request) {
	loadID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid load id")
		return
	}

	matches, err := h.usecase.MatchesForLoad(r.Context(), loadID, optionsFromQuery(r))
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchesToResponse(matches))
}

// ForTruck handles GET /trucks/{id}/matches.
// @Summary Rank open loads for a truck
// @Tags matches
// @Produce json
// @Param id path int true "Truck ID"
// @Param min_score query number false "Post-filter on score"
// @Success 200 {array} matchDTO
// @Failure 404 {object} ErrorResponse "truck not on the board"
// @Router /trucks/{id}/matches [get]
func (h *MatchHandler) ForTruck(w http.ResponseWriter, r *http.Request) {
	truckID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid truck id")
		return
	}

	matches, err := h.usecase.MatchesForTruck(r.Context(), truckID, optionsFromQuery(r))
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchesToResponse(matches))
}

func optionsFromQuery(r *http.Request) matching.Options {
	var opts matching.Options
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			opts.MinScore = v
		}
	}
	return opts
}
