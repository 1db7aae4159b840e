// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/FAbrickA/TaskApp/internal/auth"
	authpg "github.com/FAbrickA/TaskApp/internal/auth/postgres"
	"github.com/FAbrickA/TaskApp/internal/config"
	"github.com/FAbrickA/TaskApp/internal/logging"
	"github.com/FAbrickA/TaskApp/internal/observability"
	"github.com/FAbrickA/TaskApp/internal/store"
	"github.com/FAbrickA/TaskApp/internal/task"
	taskpg "github.com/FAbrickA/TaskApp/internal/task/postgres"
	"github.com/FAbrickA/TaskApp/internal/web"
	"github.com/FAbrickA/TaskApp/pkg/errutil"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server together with the observability
listener (metrics and health probes).`,
		RunE: runServe,
	}

	cmd.Flags().String("listen-addr", config.DefaultListenAddr, "API listen address")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "metrics/health listen address (empty = disabled)")
	cmd.Flags().String("database-url", "", "PostgreSQL connection string")
	cmd.Flags().Int("token-ttl-minutes", config.DefaultTokenTTLMinutes, "access token time-to-live in minutes")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "log format (json or text)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logging.SetDefault("taskapp", version, cfg.LogFormat)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("connected to database")

	tokens, err := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL())
	if err != nil {
		return err
	}

	users := authpg.NewUserRepository(pool)
	authSvc, err := auth.NewService(users, auth.NewPBKDF2Hasher(), tokens)
	if err != nil {
		return err
	}
	resolver, err := auth.NewResolver(tokens, users, logger)
	if err != nil {
		return err
	}
	tasks, err := task.NewStore(taskpg.NewTaskRepository(pool))
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	var obs *observability.Server
	if cfg.MetricsAddr != "" {
		obs = observability.NewServer(cfg.MetricsAddr, func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(pingCtx) == nil
		})
		metrics = obs.Metrics()
		if _, err := obs.Start(); err != nil {
			return err
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := obs.Stop(stopCtx); err != nil {
				errutil.LogError(logger, "observability server shutdown failed", err)
			}
		}()
	}

	api, err := web.NewServer(authSvc, resolver, tasks, pool.Ping, logger, metrics)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("api server started", "addr", cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		errutil.LogError(logger, "api server shutdown failed", err)
		return err
	}
	return nil
}
