package ratelimit

import "time"

// Clock abstracts time so refill and TTL eviction are testable.
type Clock interface {
	Now() time.Time
}

// RealClock is the production clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
