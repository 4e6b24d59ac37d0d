package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"loadboard/internal/cache"
	"loadboard/internal/config"
	"loadboard/internal/gateway"
	"loadboard/internal/http/handlers"
	"loadboard/internal/http/pprofserver"
	"loadboard/internal/http/router"
	"loadboard/internal/logx"
	"loadboard/internal/metrics"
	"loadboard/internal/outbox"
	"loadboard/internal/repository"
	"loadboard/internal/service/assignment"
	"loadboard/internal/service/escrow"
	"loadboard/internal/service/matching"
	"loadboard/internal/service/offers"
	"loadboard/internal/service/settlement"
	"loadboard/internal/transport/kafka"
)

// operationTimeout bounds every write path that runs inside a db transaction.
const operationTimeout = 5 * time.Second

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the API dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds and returns the worker dig container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := b.registerShared(container, ctx); err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := b.registerShared(container, ctx); err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) registerShared(container *dig.Container, ctx context.Context) error {
	if err := registerCore(container, ctx); err != nil {
		return fmt.Errorf("core: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// MustBuildContainer builds and returns the API dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the worker dig container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	providerRedis := func(cfg *config.Config) *redis.Client {
		return cache.NewClient(cfg.Redis)
	}
	return provideAll(container, providerDB, providerRedis)
}

type walletIn struct {
	dig.In

	Logger  logx.Logger
	Retries prometheus.Counter `name:"wallet_retries_total"`
}

func newWallet(in walletIn) *gateway.RetryingWallet {
	return gateway.NewRetryingWallet(gateway.NewLocalWallet(), in.Logger, in.Retries, gateway.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	})
}

type coordinatorIn struct {
	dig.In

	Repo        *repository.LoadRepo
	Escrow      *escrow.Manager
	Tracking    *gateway.LocalTracking
	Notifier    *gateway.LogNotifier
	Cache       *cache.Invalidator
	Logger      logx.Logger
	Assignments prometheus.Counter     `name:"assignments_total"`
	Conflicts   prometheus.Counter     `name:"assignment_conflicts_total"`
	SideEffects *prometheus.CounterVec `name:"side_effect_failures_total"`
}

func newCoordinator(in coordinatorIn) *assignment.Coordinator {
	return assignment.NewCoordinator(
		in.Repo,
		in.Escrow,
		in.Tracking,
		in.Notifier,
		in.Cache,
		operationTimeout,
		in.Logger,
		assignment.Options{
			Assignments:      in.Assignments,
			Conflicts:        in.Conflicts,
			SideEffectErrors: metrics.NewLabeled(in.SideEffects),
		},
	)
}

type settlementIn struct {
	dig.In

	Repo   *repository.SettlementRepo
	Escrow *escrow.Manager
	Cfg    *config.Config
	Logger logx.Logger
	Sweeps *prometheus.CounterVec `name:"settlement_sweep_total"`
}

func newSettlementService(in settlementIn) *settlement.Service {
	return settlement.NewService(in.Repo, in.Escrow, in.Cfg.Settlement.PodGraceWindow, in.Logger, metrics.NewLabeled(in.Sweeps))
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewLoadRepo,
		repository.NewSettlementRepo,
		repository.NewEscrowRepo,
		repository.NewOutboxRepo,
		cache.NewInvalidator,
		newWallet,
		func(cfg *config.Config) *gateway.LocalTracking {
			return gateway.NewLocalTracking(cfg.Tracking.BaseURL)
		},
		gateway.NewLogNotifier,
		func(w *gateway.RetryingWallet, repo *repository.EscrowRepo, loads *repository.LoadRepo, logger logx.Logger) *escrow.Manager {
			return escrow.NewManager(w, repo, loads, logger)
		},
		func(cfg *config.Config) *matching.Engine {
			return matching.NewEngine(cfg.Matching)
		},
		func(repo *repository.LoadRepo, engine *matching.Engine, logger logx.Logger) *matching.Service {
			return matching.NewService(repo, engine, logger)
		},
		newCoordinator,
		func(repo *repository.LoadRepo, coord *assignment.Coordinator, cfg *config.Config, logger logx.Logger) *offers.Service {
			return offers.NewService(repo, coord, cfg.Offers.DefaultTTL, operationTimeout, logger)
		},
		newSettlementService,
	)
}

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func newPprofServer(cfg *config.Config) pprofServerOut {
	if !cfg.Pprof.Enabled {
		return pprofServerOut{}
	}
	return pprofServerOut{Server: &http.Server{
		Addr: cfg.Pprof.Addr,
		Handler: pprofserver.Handler(pprofserver.Config{
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		handlers.New,
		handlers.NewAssignUsecase,
		handlers.NewSettleUsecase,
		handlers.NewLoadHandler,
		handlers.NewOfferUsecase,
		handlers.NewOfferHandler,
		handlers.NewMatchUsecase,
		handlers.NewMatchHandler,
		router.New,
		serverProvider,
		newPprofServer,
	)
}

type drainerIn struct {
	dig.In

	Repo     *repository.OutboxRepo
	Producer *kafka.Producer
	Cfg      *config.Config
	Logger   logx.Logger
	Retries  prometheus.Counter `name:"outbox_retries_total"`
}

func newDrainer(in drainerIn) *outbox.Drainer {
	return outbox.NewDrainer(in.Repo, in.Producer, in.Cfg.Outbox.MaxAttempts, in.Logger, in.Retries)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) (*kafka.Producer, error) {
			return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		},
		newDrainer,
	)
}
