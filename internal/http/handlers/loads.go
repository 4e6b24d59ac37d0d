package handlers

import (
	"net/http"

	"loadboard/internal/domain"
	"loadboard/internal/logx"
	"loadboard/internal/service/assignment"
)

// LoadHandler handles HTTP requests for load assignment and lifecycle.
type LoadHandler struct {
	assign assignUsecase
	settle settleUsecase
	logger logx.Logger
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(logger logx.Logger, assign assignUsecase, settle settleUsecase) *LoadHandler {
	return &LoadHandler{assign: assign, settle: settle, logger: logger}
}

// Assign handles POST /loads/{id}/assign.
// @Summary Commit a truck to a load
// @Tags loads
// @Accept json
// @Produce json
// @Param id path int true "Load ID"
// @Param request body assignRequest true "Assign payload"
// @Success 200 {object} assignResultDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 403 {object} ErrorResponse "not the truck's carrier"
// @Failure 409 {object} ErrorResponse "load or truck already committed"
// @Failure 422 {object} ErrorResponse "load not assignable"
// @Router /loads/{id}/assign [post]
func (h *LoadHandler) Assign(w http.ResponseWriter, r *http.Request) {
	loadID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid load id")
		return
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.assign.Assign(r.Context(), assignment.AssignCommand{
		LoadID:  loadID,
		TruckID: req.TruckID,
		Actor:   actor,
		OfferID: req.OfferID,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignResultToResponse(res))
}

// Unassign handles POST /loads/{id}/unassign.
// @Summary Release the truck from a load
// @Tags loads
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {object} unassignResultDTO
// @Failure 404 {object} ErrorResponse "load not found"
// @Failure 422 {object} ErrorResponse "load progressed past pickup"
// @Router /loads/{id}/unassign [post]
func (h *LoadHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	loadID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid load id")
		return
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}

	res, err := h.assign.Unassign(r.Context(), assignment.UnassignCommand{LoadID: loadID, Actor: actor})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, unassignResultToResponse(res))
}

// ChangeStatus handles POST /loads/{id}/status.
// @Summary Drive a load lifecycle transition
// @Tags loads
// @Accept json
// @Produce json
// @Param id path int true "Load ID"
// @Param request body statusRequest true "Target status"
// @Success 200 {object} loadDTO
// @Failure 403 {object} ErrorResponse "role may not set this status"
// @Failure 422 {object} ErrorResponse "no such transition"
// @Router /loads/{id}/status [post]
func (h *LoadHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	loadID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid load id")
		return
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	load, err := h.assign.ChangeStatus(r.Context(), assignment.ChangeStatusCommand{
		LoadID: loadID,
		To:     domain.LoadStatus(req.Status),
		Actor:  actor,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(load))
}

// Settle handles POST /loads/{id}/settle.
// @Summary Settle a delivered load
// @Tags loads
// @Produce json
// @Param id path int true "Load ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "not the load's shipper"
// @Failure 422 {object} ErrorResponse "load not ready for settlement"
// @Router /loads/{id}/settle [post]
func (h *LoadHandler) Settle(w http.ResponseWriter, r *http.Request) {
	loadID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid load id")
		return
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.settle.Approve(r.Context(), loadID, actor); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
