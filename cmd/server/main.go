// Package main - Entry point for the pricingos API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fati-2700/pricingos/api"
	"github.com/fati-2700/pricingos/internal/config"
	"github.com/fati-2700/pricingos/internal/logging"
	"github.com/fati-2700/pricingos/internal/tracing"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "Config file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		logging.Error("tracing setup failed", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logging.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	if err := api.NewServer(version, cfg.Server).ListenAndServe(ctx); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
