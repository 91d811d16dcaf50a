// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kush-gupt/bootc-demo/lib/report"
	"github.com/kush-gupt/bootc-demo/lib/version"
	"github.com/kush-gupt/bootc-demo/lib/web"
)

// listenAddress is fixed: the service recognizes no configuration.
// Deployments that need a different port remap it at the container
// or unit level.
const listenAddress = "0.0.0.0:8080"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("bootc-demo-web %s\n", version.Info())
		return nil
	}

	// Set up structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting bootc-demo-web",
		"version", version.Info(),
		"address", listenAddress,
	)

	server := web.NewServer(web.ServerConfig{
		Address: listenAddress,
		Builder: report.NewBuilder(),
		Logger:  logger,
	})

	// Serve until SIGINT/SIGTERM; Serve drains in-flight requests
	// before returning.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
