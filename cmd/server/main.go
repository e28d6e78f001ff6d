// cardcrawl-server hosts the card-crawler engine's HTTP render surface
// (§6): given a session short ID, it snapshots the session and returns a
// rendered game or map card as PNG or SVG. Session creation and the
// action-dispatch protocol are consumed by an external chat adapter,
// out of this core's scope (§1); this binary wires only the pieces named
// in SPEC_FULL.md §2 as core: the session store, the bounded render pool,
// and the HTTP routes over them.
//
// Build:
//
//	go build -o cardcrawl-server ./cmd/server
//
// Usage:
//
//	./cardcrawl-server [--addr :8080]
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardcrawl/internal/applog"
	"cardcrawl/internal/card"
	"cardcrawl/internal/config"
	"cardcrawl/internal/httpapi"
	"cardcrawl/internal/session"

	"github.com/gorilla/mux"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	cfg := config.Default()
	applog.Init(cfg.LogLevel)
	logger := applog.With("component", "server")

	store := session.NewStore()

	pool := card.NewPool(cfg.RenderWorkers, cfg.RenderQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	defer pool.Stop()

	render := card.NewService(pool, cfg.DefaultScale, cfg.MinScale, cfg.MaxScale)

	handler := httpapi.NewHandler(store, render, logger)
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, handler)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	stopSweep := startIdleSweep(store, cfg.IdleTimeout, time.Minute, logger)
	defer close(stopSweep)

	go func() {
		logger.Info("listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(srv, logger)
}

// startIdleSweep runs the session store's idle sweep on a ticker, per
// §4.6's "idle_sweep()... transitions idle sessions to GameOver(Expired)
// after a configured timeout". Returns a channel that stops the ticker
// goroutine when closed.
func startIdleSweep(store *session.Store, idleTimeout, interval time.Duration, logger *slog.Logger) chan struct{} {
	stop := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				dropped := store.IdleSweep(idleTimeout, time.Now())
				if len(dropped) > 0 {
					logger.Info("idle sweep expired sessions", "count", len(dropped))
				}
			case <-stop:
				return
			}
		}
	}()
	return stop
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight
// requests with a bounded grace period before returning.
func waitForShutdown(srv *http.Server, logger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
