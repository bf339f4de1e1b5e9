package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/DevFrancisLab/saferoute/internal/config"
	"github.com/DevFrancisLab/saferoute/pkg/e"
)

// AfricasTalking dispatches SMS and voice alerts through the Africa's
// Talking REST API. Any non-2xx response or transport error surfaces as
// ErrNotifierUnavailable; the caller decides whether to fall back.
type AfricasTalking struct {
	logger *slog.Logger
	cfg    config.GatewayConfig
	http   *http.Client
}

func NewAfricasTalking(logger *slog.Logger, cfg config.GatewayConfig) *AfricasTalking {
	return &AfricasTalking{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (n *AfricasTalking) SendSMS(ctx context.Context, phone, message string) error {
	form := url.Values{}
	form.Set("username", n.cfg.Username)
	form.Set("to", phone)
	form.Set("message", message)

	return n.post(ctx, "sms", n.cfg.SMSURL, form)
}

func (n *AfricasTalking) SendVoice(ctx context.Context, phone, message string) error {
	form := url.Values{}
	form.Set("username", n.cfg.Username)
	form.Set("to", phone)
	form.Set("from", n.cfg.CallerID)
	// The gateway reads the message back with text-to-speech.
	form.Set("message", message)

	return n.post(ctx, "voice", n.cfg.VoiceURL, form)
}

func (n *AfricasTalking) post(ctx context.Context, channel, endpoint string, form url.Values) error {
	if n.cfg.APIKey == "" {
		n.logger.Warn("gateway credentials missing", slog.String("channel", channel))
		return fmt.Errorf("no api key: %w", e.ErrNotifierUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return e.Wrap("notifier.request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", n.cfg.APIKey)

	resp, err := n.http.Do(req)
	if err != nil {
		n.logger.Warn("gateway call failed",
			slog.String("channel", channel),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("gateway: %v: %w", err, e.ErrNotifierUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		n.logger.Warn("gateway rejected dispatch",
			slog.String("channel", channel),
			slog.String("status", resp.Status),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("gateway %s: %w", resp.Status, e.ErrNotifierUnavailable)
	}

	return nil
}
