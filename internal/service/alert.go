package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/DevFrancisLab/saferoute/internal/alert"
	"github.com/DevFrancisLab/saferoute/internal/config"
	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/internal/metrics"
	"github.com/DevFrancisLab/saferoute/pkg/e"
)

type alertService struct {
	hazards  HazardSource
	log      AlertLogStore
	notifier Notifier
	lock     DriverLock
	cfg      config.AlertConfig
	policy   alert.Policy
	logger   *slog.Logger
}

func NewAlertService(
	hazards HazardSource,
	log AlertLogStore,
	notifier Notifier,
	lock DriverLock,
	cfg config.AlertConfig,
	logger *slog.Logger,
) AlertService {
	return &alertService{
		hazards:  hazards,
		log:      log,
		notifier: notifier,
		lock:     lock,
		cfg:      cfg,
		policy:   alert.Policy{Threshold: cfg.SeverityThreshold, VoiceFloor: cfg.VoiceSeverityFloor},
		logger:   logger,
	}
}

// ProcessLocation runs the full pipeline for one location update:
// locate -> deduplicate -> classify -> fatigue gate -> notify -> log.
// Request-level problems (bad coordinates, store outage) return an error
// before any attempt is written; per-hazard notifier failures only degrade
// that hazard's outcome.
func (s *alertService) ProcessLocation(ctx context.Context, req domain.AlertCheckRequest) (domain.AlertResult, error) {
	start := time.Now()

	lat, err := alert.ParseLat(req.Lat.String())
	if err != nil {
		return domain.AlertResult{}, err
	}
	lng, err := alert.ParseLng(req.Lng.String())
	if err != nil {
		return domain.AlertResult{}, err
	}

	radius := s.cfg.RadiusMeters
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}
	if radius <= 0 {
		return domain.AlertResult{}, fmt.Errorf("radius %v: %w", radius, e.ErrInvalidInput)
	}

	l := s.logger.With(slog.String("driver", req.DriverPhone))
	l.Info("alert pipeline START",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.Float64("radius_m", radius),
	)

	// Same-driver runs are serialized so two concurrent checks cannot both
	// pass the fatigue gate for one hazard.
	release, err := s.lock.Acquire(ctx, req.DriverPhone)
	if err != nil {
		return domain.AlertResult{}, err
	}
	defer release()

	hazards, err := s.hazards.Active(ctx)
	if err != nil {
		l.Error("loading active hazards failed", slog.Any("error", err))
		return domain.AlertResult{}, err
	}

	now := time.Now().UTC()
	candidates := alert.FindNearby(lat, lng, radius, hazards, now)
	survivors := alert.Deduplicate(candidates, s.cfg.DedupDistanceMeters)

	l.Debug("locate+dedup done",
		slog.Int("active", len(hazards)),
		slog.Int("nearby", len(candidates)),
		slog.Int("after_dedup", len(survivors)),
	)

	result := domain.AlertResult{
		Success:      true,
		HazardsFound: len(candidates),
		AfterDedup:   len(survivors),
		Hazards:      make([]domain.AlertedHazard, 0, len(survivors)),
		Attempts:     make([]domain.AttemptResult, 0, len(survivors)),
	}

	for _, cand := range survivors {
		channel, err := s.policy.Classify(cand.Severity)
		if err != nil {
			// corrupt stored severity: skip this hazard, keep the batch going
			l.Warn("skipping hazard with invalid severity",
				slog.String("hazard_id", cand.ID.String()),
				slog.Int("severity", cand.Severity),
			)
			continue
		}
		if channel == domain.ChannelNone {
			continue
		}

		result.Hazards = append(result.Hazards, domain.AlertedHazard{
			ID:             cand.ID,
			Type:           cand.Type,
			Severity:       cand.Severity,
			DistanceMeters: cand.DistanceMeters,
			Channel:        channel,
		})

		since := now.Add(-s.cfg.Cooldown)
		recent, err := s.log.RecentAttempt(ctx, req.DriverPhone, cand.ID, since)
		if err != nil {
			l.Error("fatigue check failed", slog.Any("error", err))
			return domain.AlertResult{}, err
		}
		if recent {
			// suppressed attempts are not re-logged; re-logging them would
			// keep pushing the cooldown window forward
			l.Info("alert suppressed by cooldown", slog.String("hazard_id", cand.ID.String()))
			result.Attempts = append(result.Attempts, domain.AttemptResult{
				HazardID: cand.ID,
				Type:     cand.Type,
				Severity: cand.Severity,
				Channel:  channel,
				Outcome:  domain.OutcomeSuppressed,
			})
			metrics.ObserveAttempt(string(channel), string(domain.OutcomeSuppressed))
			continue
		}

		outcome, usedChannel, detail := s.dispatch(ctx, req.DriverPhone, cand, channel)

		attempt := &domain.AlertAttempt{
			DriverPhone: req.DriverPhone,
			HazardID:    cand.ID,
			Channel:     usedChannel,
			Outcome:     outcome,
			Detail:      detail,
			SentAt:      time.Now().UTC(),
		}
		if err := s.log.Append(ctx, attempt); err != nil {
			// the message is already out; losing one audit row must not
			// abort the rest of the batch
			l.Error("appending alert attempt failed", slog.Any("error", err))
		}

		if outcome == domain.OutcomeSent {
			result.AlertsSent++
		}
		result.Attempts = append(result.Attempts, domain.AttemptResult{
			HazardID: cand.ID,
			Type:     cand.Type,
			Severity: cand.Severity,
			Channel:  usedChannel,
			Outcome:  outcome,
			Detail:   detail,
		})
		metrics.ObserveAttempt(string(usedChannel), string(outcome))
	}

	metrics.ObservePipeline(time.Since(start))
	l.Info("alert pipeline END",
		slog.Int("hazards_found", result.HazardsFound),
		slog.Int("after_dedup", result.AfterDedup),
		slog.Int("alerts_sent", result.AlertsSent),
	)

	return result, nil
}

// dispatch sends one alert over the chosen channel, falling back from voice
// to SMS. It reports the outcome and the channel that actually carried the
// alert. Each gateway call gets its own timeout so a hung gateway turns
// into a failed outcome instead of stalling the batch.
func (s *alertService) dispatch(ctx context.Context, phone string, cand domain.AlertCandidate, channel domain.Channel) (domain.AttemptOutcome, domain.Channel, string) {
	if channel == domain.ChannelVoice {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
		err := s.notifier.SendVoice(callCtx, phone, alert.VoiceMessage(cand))
		cancel()
		if err == nil {
			return domain.OutcomeSent, domain.ChannelVoice, "voice call placed"
		}
		s.logger.Warn("voice dispatch failed, trying sms fallback",
			slog.String("hazard_id", cand.ID.String()),
			slog.Any("error", err),
		)

		smsCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
		err = s.notifier.SendSMS(smsCtx, phone, alert.VoiceFallbackSMS(cand))
		cancel()
		if err == nil {
			return domain.OutcomeSent, domain.ChannelSMS, "voice failed, sms fallback delivered"
		}
		return domain.OutcomeFailed, domain.ChannelVoice, failDetail("voice and sms fallback failed", err)
	}

	smsCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
	err := s.notifier.SendSMS(smsCtx, phone, alert.SMSMessage(cand))
	cancel()
	if err == nil {
		return domain.OutcomeSent, domain.ChannelSMS, "sms delivered"
	}
	return domain.OutcomeFailed, domain.ChannelSMS, failDetail("sms failed", err)
}

func failDetail(msg string, err error) string {
	if errors.Is(err, e.ErrNotifierUnavailable) {
		return msg + ": gateway unavailable"
	}
	return msg + ": " + err.Error()
}
