package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiptrack/cmd"
	"shiptrack/internal/pkg/logger"
	"shiptrack/internal/pkg/metrics"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Error("Service stopped with error", zap.Error(err))
		stop()
		_ = lg.Sync()
		os.Exit(1)
	}
	lg.Info("Service stopped")
}

// run serves HTTP, runs the scheduled jobs and the notification dispatcher
// until ctx is done. HTTP is drained first so that notifications raised by
// in-flight requests are still queued before the dispatcher drains.
func run(ctx context.Context, cfg cmd.Config, lg *zap.Logger) error {
	db, err := cmd.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, cfg, db, lg, metrics.New())
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			lg.Warn("Close failed", zap.Error(err))
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return errors.Wrap(err, "start jobs")
	}

	server := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.HTTPPort),
		Handler:           app.CreateEcho(),
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Dispatcher().Run(dispatchCtx)
	})
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopDispatch()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
		jobManager.StopAll()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown server")
		}
		return nil
	})

	return g.Wait()
}
