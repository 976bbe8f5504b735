package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"autoinsight/internal/application"
	"autoinsight/internal/config"
	"autoinsight/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := newLogger(os.Stdout, cfg.Log)
	slog.SetDefault(log)

	if err = application.Run(ctx, cfg, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func newLogger(w io.Writer, cfg config.Log) *slog.Logger {
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{ //nolint:exhaustruct
			Level: cfg.Level,
		}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{ //nolint:exhaustruct
		Level:      cfg.Level,
		TimeFormat: time.DateTime,
	}))
}
