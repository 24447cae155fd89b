package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/topfive/backend/conf"
	"github.com/topfive/backend/http"
	"github.com/topfive/backend/subm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout,
		&slog.HandlerOptions{Level: logLevel})))

	store := subm.NewStore(cfg.MaxSubmissions)
	httpServer := http.NewHttpServer(store, cfg)

	address := cfg.Address()
	slog.Info("starting server",
		"address", address,
		"debug", cfg.Debug,
		"max_submissions", store.Capacity())

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(address)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			slog.Error("shutdown did not complete cleanly", "error", err)
			os.Exit(1)
		}
	}
}
