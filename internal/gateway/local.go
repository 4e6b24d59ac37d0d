package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"loadboard/internal/logx"
)

// LocalWallet is an in-process Wallet used in development and tests. Every
// operation succeeds and returns a fresh transaction id.
type LocalWallet struct{}

// NewLocalWallet creates a new LocalWallet.
func NewLocalWallet() *LocalWallet { return &LocalWallet{} }

// Hold implements Wallet.
func (*LocalWallet) Hold(context.Context, int64, int64) (string, error) {
	return uuid.NewString(), nil
}

// Release implements Wallet.
func (*LocalWallet) Release(context.Context, int64) (string, error) {
	return uuid.NewString(), nil
}

// Refund implements Wallet.
func (*LocalWallet) Refund(context.Context, int64) (string, error) {
	return uuid.NewString(), nil
}

// LocalTracking is an in-process Tracking stand-in.
type LocalTracking struct {
	BaseURL string
}

// NewLocalTracking creates a new LocalTracking.
func NewLocalTracking(baseURL string) *LocalTracking {
	if baseURL == "" {
		baseURL = "https://track.invalid"
	}
	return &LocalTracking{BaseURL: baseURL}
}

// Enable implements Tracking.
func (t *LocalTracking) Enable(_ context.Context, loadID, truckID int64) (string, error) {
	return fmt.Sprintf("%s/loads/%d/trucks/%d", t.BaseURL, loadID, truckID), nil
}

// LogNotifier writes notifications to the log instead of delivering them.
type LogNotifier struct {
	logger logx.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger logx.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, recipientID int64, kind string, payload map[string]any) error {
	n.logger.Info("notification",
		logx.Int64("recipient_id", recipientID),
		logx.String("kind", kind),
		logx.Any("payload", payload),
	)
	return nil
}
