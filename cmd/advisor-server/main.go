// cmd/advisor-server/main.go
package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"marketing-advisor/internal/bootstrap"
	"marketing-advisor/internal/common/config"
	"marketing-advisor/internal/common/logger"
	"marketing-advisor/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	zapLog.Info("starting advisor server",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	agent, shutdown, err := bootstrap.BuildAgent(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("agent wiring failed", zap.Error(err))
	}
	defer shutdown()

	srv := server.New(cfg.Server, agent, logger.NewZapAdapter(zapLog))

	// pprof on a side port, debug only
	if cfg.App.Environment != "production" {
		go func() {
			zapLog.Info("pprof listening", zap.String("address", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLog.Warn("pprof server stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("signal received, shutting down", zap.String("signal", sig.String()))
	}

	shutdownTimeout := 10 * time.Second
	if cfg.Server.ShutdownTimeout > 0 {
		shutdownTimeout = time.Duration(cfg.Server.ShutdownTimeout) * time.Millisecond
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("advisor server stopped")
}
