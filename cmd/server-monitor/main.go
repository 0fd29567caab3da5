// Package main is the entry point for the server-monitor probe.
// It loads configuration, builds the logger, and serves the metrics API
// until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/beycaCC/Server-Monitor/internal/auth"
	"github.com/beycaCC/Server-Monitor/internal/collector"
	"github.com/beycaCC/Server-Monitor/internal/config"
	"github.com/beycaCC/Server-Monitor/internal/models"
	"github.com/beycaCC/Server-Monitor/internal/server"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	configPath  = flag.String("config", "", "Path to configuration file (default: search standard locations)")
	listenAddr  = flag.String("listen", "", "Listen address, overrides config")
	showVersion = flag.Bool("version", false, "Show version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("server-monitor %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *listenAddr != "" {
		cfg.Server.Listen = *listenAddr
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	probe := collector.NewGopsutilProbe()
	coll := collector.New(probe, logger, cfg.Collection.CPUSample.Duration)
	guard := auth.NewGuard(cfg.Server.Token)

	if !guard.Enabled() {
		logger.Warn("No token configured, /api/metrics is open to anyone")
	}

	if vm, err := probe.VirtualMemory(context.Background()); err == nil {
		logger.Info("Host memory detected",
			zap.String("total", models.BytesToHuman(vm.Total)))
	}

	srv := server.New(logger, guard, coll, version)
	if err := srv.Start(cfg.Server.Listen); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// initLogger creates a zap logger based on the configuration.
// It outputs to console (human-readable) and optionally a JSON log file.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
