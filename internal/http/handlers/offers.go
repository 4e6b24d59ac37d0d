package handlers

import (
	"context"
	"net/http"
	"time"

	"loadboard/internal/domain"
	"loadboard/internal/logx"
	"loadboard/internal/service/offers"
)

// OfferHandler handles HTTP requests for offer resources.
type OfferHandler struct {
	usecase offerUsecase
	logger  logx.Logger
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(logger logx.Logger, uc offerUsecase) *OfferHandler {
	return &OfferHandler{usecase: uc, logger: logger}
}

// Create handles POST /offers.
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param request body createOfferRequest true "Offer payload"
// @Success 201 {object} offerDTO
// @Failure 403 {object} ErrorResponse "kind not allowed for this role"
// @Failure 422 {object} ErrorResponse "load closed or truck busy"
// @Router /offers [post]
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}
	var req createOfferRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	offer, err := h.usecase.Create(r.Context(), offers.CreateCommand{
		Kind:    domain.OfferKind(req.Kind),
		LoadID:  req.LoadID,
		TruckID: req.TruckID,
		Actor:   actor,
		TTL:     time.Duration(req.TTLHours) * time.Hour,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, offerToResponse(*offer))
}

// Approve handles POST /offers/{id}/approve.
// @Summary Approve an offer, committing the assignment
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} resolveResultDTO
// @Failure 403 {object} ErrorResponse "not the owning party"
// @Failure 409 {object} ErrorResponse "load or truck already committed"
// @Failure 422 {object} ErrorResponse "offer resolved or expired"
// @Router /offers/{id}/approve [post]
func (h *OfferHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.usecase.Approve)
}

// Reject handles POST /offers/{id}/reject.
// @Summary Reject an offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} resolveResultDTO
// @Failure 422 {object} ErrorResponse "offer resolved or expired"
// @Router /offers/{id}/reject [post]
func (h *OfferHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.usecase.Reject)
}

// Cancel handles POST /offers/{id}/cancel.
// @Summary Withdraw an offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} resolveResultDTO
// @Failure 403 {object} ErrorResponse "not the creator"
// @Router /offers/{id}/cancel [post]
func (h *OfferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.usecase.Cancel)
}

// ListByLoad handles GET /loads/{id}/offers.
// @Summary List the offers of a load
// @Tags offers
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {array} offerDTO
// @Router /loads/{id}/offers [get]
func (h *OfferHandler) ListByLoad(w http.ResponseWriter, r *http.Request) {
	loadID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid load id")
		return
	}

	list, err := h.usecase.ListByLoad(r.Context(), loadID)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, offersToResponse(list))
}

func (h *OfferHandler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, cmd offers.ResolveCommand) (domain.ResolveResult, error),
) {
	offerID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid offer id")
		return
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}

	res, err := fn(r.Context(), offers.ResolveCommand{OfferID: offerID, Actor: actor})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, resolveResultToResponse(res))
}
