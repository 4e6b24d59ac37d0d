package gateway

import (
	"context"
	"errors"
)

// Wallet is the external payments collaborator holding shipper funds.
// Implementations live outside this service; only the contract is owned here.
type Wallet interface {
	// Hold reserves amountMinor against the load, returning a transaction id.
	Hold(ctx context.Context, loadID, amountMinor int64) (string, error)
	// Release pays the held funds out to the carrier.
	Release(ctx context.Context, loadID int64) (string, error)
	// Refund returns the held funds to the shipper.
	Refund(ctx context.Context, loadID int64) (string, error)
}

// Tracking enables GPS tracking for an assigned load, best-effort.
type Tracking interface {
	Enable(ctx context.Context, loadID, truckID int64) (trackingURL string, err error)
}

// Notifier delivers a one-way notification, fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind string, payload map[string]any) error
}

// TemporaryError marks an error worth retrying.
type TemporaryError interface {
	Temporary() bool
}

// IsRetryable reports whether the gateway error is transient.
func IsRetryable(err error) bool {
	var tmp TemporaryError
	if errors.As(err, &tmp) {
		return tmp.Temporary()
	}
	return false
}
