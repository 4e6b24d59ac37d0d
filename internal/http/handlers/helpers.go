package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"loadboard/internal/apperr"
	"loadboard/internal/domain"
	"loadboard/internal/identity"
	"loadboard/internal/logx"
)

func reqID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return "-"
}

func writeJSON(l logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		l.Error("json encode failed", logx.String("req_id", reqID(r)), logx.Err(err))
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(l logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	l.Warn("http error",
		logx.String("req_id", reqID(r)),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(l, w, r, status, ErrorResponse{Error: msg})
}

// respondError maps the service sentinels onto HTTP statuses. Sentinel
// errors carry safe, user-facing text; anything else is an internal error.
func respondError(l logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(l, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(l, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		writeError(l, w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrInvalidState):
		writeError(l, w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(l, w, r, http.StatusConflict, err.Error())
	default:
		l.Error("unhandled error", logx.String("req_id", reqID(r)), logx.Err(err))
		writeError(l, w, r, http.StatusInternalServerError, "internal error")
	}
}

const bodyLimit = 1 << 20

func decodeJSON[T any](l logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(l, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(l, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// Identity headers stamped by the API gateway after session validation.
const (
	headerUserID = "X-User-Id"
	headerOrgID  = "X-Org-Id"
	headerRole   = "X-Role"
)

func actorFromRequest(r *http.Request) (identity.Actor, error) {
	userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
	if err != nil || userID <= 0 {
		return identity.Actor{}, errors.New("missing or invalid " + headerUserID)
	}
	orgID, err := strconv.ParseInt(r.Header.Get(headerOrgID), 10, 64)
	if err != nil || orgID <= 0 {
		return identity.Actor{}, errors.New("missing or invalid " + headerOrgID)
	}
	role := domain.Role(strings.ToUpper(strings.TrimSpace(r.Header.Get(headerRole))))
	if !role.Valid() {
		return identity.Actor{}, errors.New("missing or invalid " + headerRole)
	}
	return identity.Actor{UserID: userID, OrgID: orgID, Role: role}, nil
}
