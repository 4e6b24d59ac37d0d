package ratelimit

// Limiter decides whether a tenant key may proceed.
type Limiter interface {
	Allow(key string) bool
}
