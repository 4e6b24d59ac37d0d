package ratelimit

// NopLimiter allows everything. Used when rate limiting is disabled in config.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }

func NewNopLimiter() Limiter { return NopLimiter{} }
