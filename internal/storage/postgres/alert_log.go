package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertLogRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertLogRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertLogRepo {
	return &AlertLogRepo{pool: pool, logger: logger}
}

// Append writes one attempt to the audit log. Rows are never updated.
func (p *AlertLogRepo) Append(ctx context.Context, attempt *domain.AlertAttempt) error {
	const op = "postgres.AlertLog.Append"

	if attempt == nil || attempt.DriverPhone == "" || attempt.HazardID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO alert_attempts (id, driver_phone, hazard_id, channel, outcome, detail, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.SentAt.IsZero() {
		attempt.SentAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		attempt.ID,
		attempt.DriverPhone,
		attempt.HazardID,
		attempt.Channel,
		attempt.Outcome,
		attempt.Detail,
		attempt.SentAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("hazard_id", attempt.HazardID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// RecentAttempt reports whether a successful attempt for the pair exists
// strictly after `since`. The strict comparison keeps the old edge of the
// cooldown window exclusive.
func (p *AlertLogRepo) RecentAttempt(ctx context.Context, driverPhone string, hazardID uuid.UUID, since time.Time) (bool, error) {
	const op = "postgres.AlertLog.RecentAttempt"

	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM alert_attempts
			WHERE driver_phone = $1
			  AND hazard_id = $2
			  AND outcome = 'sent'
			  AND sent_at > $3
		)
	`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, driverPhone, hazardID, since).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("hazard_id", hazardID.String()),
		)
		return false, e.WrapError(ctx, op, err)
	}

	return exists, nil
}
