// Package sms abstracts the third-party text-message provider behind a
// Sender interface so the notification fan-out can be tested without
// touching the network.
package sms

import (
	"context"

	"github.com/mithuan2002/testisimple/pkg/logger"

	"go.uber.org/zap"
)

// Sender delivers a single text message. Implementations must honor ctx
// cancellation so a hanging provider cannot stall a campaign request.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// Noop is the sender used when no provider credentials are configured. It
// logs the message and reports success, which keeps demo installs working
// end to end.
type Noop struct{}

// Send logs the message instead of delivering it
func (Noop) Send(_ context.Context, to, body string) error {
	logger.Info("SMS provider not configured, skipping send",
		zap.String("to", to),
		zap.Int("body_len", len(body)),
	)
	return nil
}
