// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/coffee-shop-service/internal/cache"
	"github.com/canonical/coffee-shop-service/internal/config"
	"github.com/canonical/coffee-shop-service/internal/db"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring/prometheus"
	"github.com/canonical/coffee-shop-service/internal/storage"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
	"github.com/canonical/coffee-shop-service/pkg/drinks"
	"github.com/canonical/coffee-shop-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("coffee-shop-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ctx := context.Background()

	store, closeStore, err := newKeySetStore(ctx, specs, tracer, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	authorizer, err := newAuthorizer(ctx, specs.AuthSpec, store, specs.JWKSCacheTTL, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create authorizer: %w", err)
	}
	guard := authentication.NewMiddleware(authorizer, tracer, logger)

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(ctx, dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, logger)
	drinksService := drinks.NewService(s, dbClient, tracer, logger)

	router := web.NewRouter(
		web.RouterConfig{CORSAllowedOrigins: specs.CORSAllowedOrigins},
		drinksService,
		guard,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// newKeySetStore returns the JWKS cache backend, redis when REDIS_URL is set
func newKeySetStore(
	ctx context.Context,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) (authentication.KeySetStoreInterface, func(), error) {
	if specs.JWKSCacheTTL <= 0 {
		return nil, func() {}, nil
	}

	if specs.RedisURL == "" {
		return authentication.NewMemoryStore(), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, specs.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Errorf("failed to close redis client: %v", err)
		}
	}

	return cache.NewKeySetStore(client, tracer, logger), closeClient, nil
}
