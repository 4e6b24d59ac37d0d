package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Redis stores read-cache settings.
type Redis struct {
	Addr string
}

// Kafka stores event publishing settings. Empty brokers disable publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Matching stores matching engine settings.
type Matching struct {
	DeadheadLimitKm     float64
	SoftDeadheadLimitKm float64
	ExactThreshold      float64
}

// Settlement stores settlement sweep settings.
type Settlement struct {
	PodGraceWindow time.Duration
	SweepInterval  time.Duration
}

// Outbox stores outbox drainer settings.
type Outbox struct {
	DrainInterval time.Duration
	MaxAttempts   int
}

// RateLimit stores per-tenant request limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Offers stores offer lifecycle settings.
type Offers struct {
	DefaultTTL time.Duration
}

// Tracking stores tracking gateway settings.
type Tracking struct {
	BaseURL string
}

// Pprof stores the profiling listener settings. Disabled unless enabled
// explicitly; non-loopback access requires basic auth.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Config stores service settings.
type Config struct {
	Port       int
	DB         DB
	Redis      Redis
	Kafka      Kafka
	Matching   Matching
	Settlement Settlement
	Outbox     Outbox
	RateLimit  RateLimit
	Offers     Offers
	Tracking   Tracking
	Pprof      Pprof
}

var (
	parseFlags sync.Once
	flagPort   int
)

// Load reads configuration in order: .env (if present) → environment → flags.
// Safe to call more than once per process; flags are registered and parsed
// a single time.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       DefaultPort(),
		DB:         DefaultDB(),
		Redis:      DefaultRedis(),
		Kafka:      DefaultKafka(),
		Matching:   DefaultMatching(),
		Settlement: DefaultSettlement(),
		Outbox:     DefaultOutbox(),
		RateLimit:  DefaultRateLimit(),
		Offers:     DefaultOffers(),
		Tracking:   DefaultTracking(),
		Pprof:      DefaultPprof(),
	}
	fromEnv(cfg)

	parseFlags.Do(func() {
		pflag.IntVarP(&flagPort, "port", "p", DefaultPort(), "port to listen on")
		pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
		pflag.Parse()
	})
	if pflag.CommandLine.Changed("port") {
		cfg.Port = flagPort
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Matching.DeadheadLimitKm <= 0 {
		return nil, fmt.Errorf("invalid deadhead limit: %f", cfg.Matching.DeadheadLimitKm)
	}
	return cfg, nil
}

func fromEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	setStr(&cfg.DB.Host, "DB_HOST")
	setStr(&cfg.DB.Port, "DB_PORT")
	setStr(&cfg.DB.User, "DB_USER")
	setStr(&cfg.DB.Pass, "DB_PASS")
	setStr(&cfg.DB.Name, "DB_NAME")
	setStr(&cfg.Redis.Addr, "REDIS_ADDR")
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	setStr(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	setDuration(&cfg.Settlement.PodGraceWindow, "POD_GRACE_WINDOW")
	setDuration(&cfg.Settlement.SweepInterval, "SETTLEMENT_SWEEP_INTERVAL")
	setDuration(&cfg.Outbox.DrainInterval, "OUTBOX_DRAIN_INTERVAL")
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit.Rate = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.Burst = n
		}
	}
	setDuration(&cfg.Offers.DefaultTTL, "OFFER_DEFAULT_TTL")
	setStr(&cfg.Tracking.BaseURL, "TRACKING_BASE_URL")
	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		cfg.Pprof.Enabled = v == "true" || v == "1"
	}
	setStr(&cfg.Pprof.Addr, "PPROF_ADDR")
	setStr(&cfg.Pprof.User, "PPROF_USER")
	setStr(&cfg.Pprof.Pass, "PPROF_PASS")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
