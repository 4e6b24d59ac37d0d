package ratelimit

import (
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"loadboard/internal/logx"
)

// Middleware ограничивает частоту запросов на одного арендатора платформы.
// Buckets are keyed by the organization id stamped by the API gateway, so
// one noisy shipper or carrier cannot starve the others. Requests that
// arrive without an identity (health checks, metrics scrapes behind a
// misrouted path) fall back to the client IP.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter // отказы
	limiter Limiter
}

// New создает новый Middleware
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limitKey(r)

			if !m.limiter.Allow(key) {
				if m.counter != nil {
					m.counter.Inc()
				}
				m.logger.Warn("rate limit exceeded",
					logx.String("key", key),
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
					// клиент мог оборвать соединение; это не ошибка бизнес-логики
					m.logger.Debug("rate limit response write failed",
						logx.String("key", key),
						logx.Any("err", err),
					)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limitKey prefers the tenant identity over the network address. The org
// header is trusted here for the same reason the handlers trust it: only
// the gateway can reach this service.
func limitKey(r *http.Request) string {
	if org := r.Header.Get("X-Org-Id"); org != "" {
		if id, err := strconv.ParseInt(org, 10, 64); err == nil && id > 0 {
			return "org:" + org
		}
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	// пока без нормализации
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
