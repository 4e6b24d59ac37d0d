package gateway

import (
	"context"
	"time"

	"loadboard/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig describes the retry behavior of RetryingWallet.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingWallet decorates a Wallet with bounded exponential backoff on
// transient errors. Permanent errors return immediately.
type RetryingWallet struct {
	next    Wallet
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(time.Duration)
}

// NewRetryingWallet creates a new RetryingWallet; next must not be nil.
func NewRetryingWallet(next Wallet, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingWallet {
	if next == nil {
		return nil
	}
	return &RetryingWallet{next: next, logger: logger, retries: retries, cfg: cfg, sleep: time.Sleep}
}

// Hold retries the wrapped Hold.
func (g *RetryingWallet) Hold(ctx context.Context, loadID, amountMinor int64) (string, error) {
	return g.retry(ctx, "Hold", func() (string, error) {
		return g.next.Hold(ctx, loadID, amountMinor)
	})
}

// Release retries the wrapped Release.
func (g *RetryingWallet) Release(ctx context.Context, loadID int64) (string, error) {
	return g.retry(ctx, "Release", func() (string, error) {
		return g.next.Release(ctx, loadID)
	})
}

// Refund retries the wrapped Refund.
func (g *RetryingWallet) Refund(ctx context.Context, loadID int64) (string, error) {
	return g.retry(ctx, "Refund", func() (string, error) {
		return g.next.Refund(ctx, loadID)
	})
}

func (g *RetryingWallet) retry(ctx context.Context, method string, call func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		txID, err := call()
		if err == nil {
			return txID, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !IsRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("wallet gateway retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, g.sleep, delay) {
			break
		}
	}
	return "", lastErr
}

// backoff computes the retry delay.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, sleep func(time.Duration), d time.Duration) bool {
	if d <= 0 {
		return true
	}
	done := make(chan struct{})
	go func() {
		sleep(d)
		close(done)
	}()
	select {
	case <-ctx.Done():
		return false
	case <-done:
		return true
	}
}
