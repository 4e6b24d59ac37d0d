package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loadboard/internal/http/handlers"
	custommw "loadboard/internal/http/middleware"
	"loadboard/internal/http/middleware/ratelimit"
	"loadboard/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	rl *ratelimit.Middleware,
	h *handlers.Handlers,
	loads *handlers.LoadHandler,
	offers *handlers.OfferHandler,
	matches *handlers.MatchHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Observability(logger))
	if rl != nil {
		r.Use(rl.Handler())
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/loads/{id}", func(r chi.Router) {
		r.Post("/assign", loads.Assign)
		r.Post("/unassign", loads.Unassign)
		r.Post("/status", loads.ChangeStatus)
		r.Post("/settle", loads.Settle)
		r.Get("/offers", offers.ListByLoad)
		r.Get("/matches", matches.ForLoad)
	})
	r.Post("/offers", offers.Create)
	r.Route("/offers/{id}", func(r chi.Router) {
		r.Post("/approve", offers.Approve)
		r.Post("/reject", offers.Reject)
		r.Post("/cancel", offers.Cancel)
	})
	r.Get("/trucks/{id}/matches", matches.ForTruck)

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
