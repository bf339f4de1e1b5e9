package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HazardRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHazardRepo(pool *pgxpool.Pool, logger *slog.Logger) *HazardRepo {
	return &HazardRepo{pool: pool, logger: logger}
}

func (p *HazardRepo) Create(ctx context.Context, hazard *domain.Hazard) error {
	const op = "postgres.Hazard.Create"

	const query = `
		INSERT INTO hazards (id, type, severity, lat, lng, expires_at, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
	`

	if hazard.ID == uuid.Nil {
		hazard.ID = uuid.New()
	}
	if hazard.CreatedAt.IsZero() {
		hazard.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		hazard.ID,
		hazard.Type,
		hazard.Severity,
		hazard.Lat,
		hazard.Lng,
		hazard.ExpiresAt,
		hazard.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *HazardRepo) List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error) {
	const op = "postgres.Hazard.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM hazards`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, type, severity, lat, lng, expires_at, created_at
		FROM hazards
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var hazards []*domain.Hazard
	for rows.Next() {
		var h domain.Hazard
		if err := rows.Scan(
			&h.ID,
			&h.Type,
			&h.Severity,
			&h.Lat,
			&h.Lng,
			&h.ExpiresAt,
			&h.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		hazards = append(hazards, &h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return hazards, total, nil
}

func (p *HazardRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	const op = "postgres.Hazard.Get"

	const query = `
		SELECT id, type, severity, lat, lng, expires_at, created_at
		FROM hazards
		WHERE id = $1
	`

	var h domain.Hazard
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&h.ID,
		&h.Type,
		&h.Severity,
		&h.Lat,
		&h.Lng,
		&h.ExpiresAt,
		&h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &h, nil
}

func (p *HazardRepo) Update(ctx context.Context, hazard *domain.Hazard) error {
	const op = "postgres.Hazard.Update"

	const query = `
		UPDATE hazards
		SET type       = $2,
			severity   = $3,
			lat        = $4,
			lng        = $5,
			expires_at = $6
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		hazard.ID,
		hazard.Type,
		hazard.Severity,
		hazard.Lat,
		hazard.Lng,
		hazard.ExpiresAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", hazard.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *HazardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Hazard.Delete"

	const query = `
		UPDATE hazards
		SET active = FALSE
		WHERE id = $1 AND active = TRUE
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// ListActive returns hazards that are not soft-deleted and not expired at
// the given evaluation time.
func (p *HazardRepo) ListActive(ctx context.Context, now time.Time) ([]domain.Hazard, error) {
	const op = "postgres.Hazard.ListActive"

	const query = `
		SELECT id, type, severity, lat, lng, expires_at, created_at
		FROM hazards
		WHERE active = TRUE
		  AND (expires_at IS NULL OR expires_at > $1)
	`

	rows, err := p.pool.Query(ctx, query, now)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	hazards := make([]domain.Hazard, 0, 16)
	for rows.Next() {
		var h domain.Hazard
		if err := rows.Scan(
			&h.ID,
			&h.Type,
			&h.Severity,
			&h.Lat,
			&h.Lng,
			&h.ExpiresAt,
			&h.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		hazards = append(hazards, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return hazards, nil
}
