package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "loadboard",
	Pass: "loadboard",
	Name: "loadboard",
}

var defaultRedis = Redis{
	Addr: "127.0.0.1:6379",
}

var defaultKafka = Kafka{
	Topic: "load-events",
}

var defaultMatching = Matching{
	DeadheadLimitKm:     200,
	SoftDeadheadLimitKm: 100,
	ExactThreshold:      85,
}

var defaultSettlement = Settlement{
	PodGraceWindow: 48 * time.Hour,
	SweepInterval:  10 * time.Minute,
}

var defaultOutbox = Outbox{
	DrainInterval: 15 * time.Second,
	MaxAttempts:   5,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultOffers = Offers{
	DefaultTTL: 24 * time.Hour,
}

var defaultTracking = Tracking{}

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRedis returns the default redis settings.
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultKafka returns the default kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultMatching returns the default matching settings.
func DefaultMatching() Matching {
	return defaultMatching
}

// DefaultSettlement returns the default settlement settings.
func DefaultSettlement() Settlement {
	return defaultSettlement
}

// DefaultOutbox returns the default outbox settings.
func DefaultOutbox() Outbox {
	return defaultOutbox
}

// DefaultRateLimit returns the default rate limiting settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultOffers returns the default offer lifecycle settings.
func DefaultOffers() Offers {
	return defaultOffers
}

// DefaultTracking returns the default tracking gateway settings.
func DefaultTracking() Tracking {
	return defaultTracking
}

// DefaultPprof returns the default profiling listener settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
