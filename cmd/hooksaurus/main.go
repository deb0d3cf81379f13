package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hooksaurus/internal/config"
	"hooksaurus/internal/http/handlers"
	applog "hooksaurus/internal/log"
	"hooksaurus/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		applog.Get().Fatal().Err(err).Msg("config")
	}

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			applog.Get().Warn().Err(err).Str("file", cfg.LogFile).Msg("could not open log file")
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.Init(applog.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: out})
	logger := applog.Get()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Str("dsn", cfg.DBDSN).Msg("open db")
	}
	defer db.Close()

	if cfg.SeedDemo {
		if err := repos.SeedDemo(context.Background(), db); err != nil {
			logger.Fatal().Err(err).Msg("seed demo data")
		}
	}

	deps := handlers.NewDeps(db)
	deps.AccessLog = out
	app, err := handlers.NewApp(cfg, deps)
	if err != nil {
		logger.Fatal().Err(err).Msg("load templates")
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.Addr()).Str("db", cfg.DBDSN).Msg("listening")
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("listen")
	}
}
