// Command mitra runs the citizen-services MCP server.
//
// Configuration comes from the environment (or a .env file): AUTH_TOKEN
// and MY_NUMBER are required, DATA_DIR, LISTEN_ADDR, LOG_LEVEL, and
// LOG_FORMAT are optional. The server exposes the MCP endpoint at /mcp
// (bearer-token protected) and prometheus metrics at /metrics.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nagrikmitra/mitra/auth"
	"github.com/nagrikmitra/mitra/config"
	"github.com/nagrikmitra/mitra/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	svc, err := service.New(service.Options{
		DataDir:  cfg.DataDir,
		Identity: cfg.MyNumber,
		Verifier: auth.NewStaticVerifier(cfg.AuthToken, "puch-client"),
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to build service", zap.Error(err))
	}

	stats := svc.Stats()
	logger.Info("reference data loaded",
		zap.Int("services", stats.Services),
		zap.String("servicesFingerprint", stats.ServicesFingerprint),
		zap.Int("schemes", stats.Schemes),
		zap.String("schemesFingerprint", stats.SchemesFingerprint))

	mux := http.NewServeMux()
	mux.Handle("/mcp", svc.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting citizen-services MCP server",
			zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server shutdown complete")
}

func newLogger(levelStr, format string) *zap.Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	return logger
}
