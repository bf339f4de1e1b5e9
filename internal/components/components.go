package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DevFrancisLab/saferoute/internal/api"
	"github.com/DevFrancisLab/saferoute/internal/config"
	"github.com/DevFrancisLab/saferoute/internal/metrics"
	"github.com/DevFrancisLab/saferoute/internal/notifier"
	"github.com/DevFrancisLab/saferoute/internal/redis"
	"github.com/DevFrancisLab/saferoute/internal/service"
	"github.com/DevFrancisLab/saferoute/internal/storage/postgres"
	"github.com/DevFrancisLab/saferoute/internal/workers"
	"github.com/DevFrancisLab/saferoute/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Refresher  *workers.CacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	hazardCache := redis.NewHazardCache(redisClient)
	driverLock := redis.NewDriverLock(redisClient)

	var gateway service.Notifier
	if cfg.Gateway.Disabled {
		gateway = notifier.NewDisabled(logger)
	} else {
		gateway = notifier.NewAfricasTalking(logger, cfg.Gateway)
	}

	hazardSource := service.NewCachedHazardSource(hazardCache, storage.Hazards(), cfg.Alert.CacheTTL, logger)

	adminSvc := service.NewAdminHazardService(storage.Hazards(), hazardCache, logger)
	alertSvc := service.NewAlertService(hazardSource, storage.AlertLog(), gateway, driverLock, cfg.Alert, logger)
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(adminSvc, alertSvc, statsSvc)

	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	httpServer := api.NewServer(cfg, logger, srv, reg)
	logger.Info("Initialized server")

	refresher := workers.NewCacheRefresher(storage.Hazards(), hazardCache, logger, 30*time.Second, cfg.Alert.CacheTTL)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Refresher:  refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
