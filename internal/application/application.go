package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"autoinsight/api"
	"autoinsight/internal/config"
	"autoinsight/internal/domain/service/vehicle"
	"autoinsight/internal/infrastructure/vpic"
	"autoinsight/internal/server"
	"autoinsight/pkg/application/modules"
	"autoinsight/pkg/contextx"
	"autoinsight/pkg/logx"
	"autoinsight/pkg/metrics"
	"autoinsight/pkg/probe"
)

// Run serves the API until ctx is cancelled or a module fails.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	// 1. Metrics
	registry := metrics.NewRegistry()

	// 2. Upstream decoder
	decoder, err := vpic.NewClient(vpic.Config{
		BaseURL:        cfg.VPIC.BaseURL,
		Timeout:        cfg.VPIC.Timeout,
		LogFieldMaxLen: cfg.Log.FieldMaxLen,
	}, registry)
	if err != nil {
		return fmt.Errorf("vpic.NewClient: %w", err)
	}

	// 3. Services
	vehicleService := vehicle.NewService(decoder)

	// 4. HTTP
	router := server.NewRouter(
		server.NewServer(
			server.NewVehicleServer(vehicleService),
			probe.New(probe.Options{
				Name:    cfg.App.Name,
				Version: cfg.App.Version,
				Docs:    cfg.App.DocsPath,
			}),
			api.OpenAPI,
		),
		server.RouterOptions{
			Logger:            log,
			CORSAllowedOrigin: cfg.HTTP.CORSAllowedOrigin,
			LogFieldMaxLen:    cfg.Log.FieldMaxLen,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	if cfg.Metrics.Enabled {
		modules.MetricServer{
			ListenAddress: cfg.Metrics.ListenAddress,
			Gatherer:      registry,
		}.Run(ctx, g)
	}

	log.Info("application started")

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
