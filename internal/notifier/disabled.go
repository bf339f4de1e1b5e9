package notifier

import (
	"context"
	"log/slog"
)

// Disabled logs instead of dispatching. Used when AT_DISABLED=true, e.g.
// for local runs without gateway credentials.
type Disabled struct {
	logger *slog.Logger
}

func NewDisabled(logger *slog.Logger) *Disabled {
	return &Disabled{logger: logger}
}

func (n *Disabled) SendSMS(ctx context.Context, phone, message string) error {
	n.logger.Info("notifier disabled, dropping SMS", slog.String("to", phone), slog.String("message", message))
	return nil
}

func (n *Disabled) SendVoice(ctx context.Context, phone, message string) error {
	n.logger.Info("notifier disabled, dropping voice call", slog.String("to", phone), slog.String("message", message))
	return nil
}
