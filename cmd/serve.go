// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/config"
	"github.com/canonical/notes-service/internal/db"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring/prometheus"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/pkg/authentication"
	"github.com/canonical/notes-service/pkg/notes"
	"github.com/canonical/notes-service/pkg/status"
	"github.com/canonical/notes-service/pkg/tenant"
	"github.com/canonical/notes-service/pkg/users"
	"github.com/canonical/notes-service/pkg/web"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("notes-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	dependencies := map[string]status.DependencyInterface{"database": dbClient}

	var limiter authentication.LimiterInterface
	if specs.RedisURL != "" {
		redisLimiter, err := authentication.NewRedisLimiter(
			specs.RedisURL,
			int64(specs.LoginMaxAttempts),
			specs.LoginAttemptWindow,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create login limiter: %w", err)
		}
		defer redisLimiter.Close()

		limiter = redisLimiter
		dependencies["redis"] = redisLimiter
	} else {
		logger.Info("REDIS_URL not set, login throttling is disabled")
		limiter = authentication.NewNoopLimiter()
	}

	tokens, err := authentication.NewTokenService(specs.TokenSigningSecret, specs.TokenIssuer, time.Now, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	hasher := authentication.NewArgon2Hasher(authentication.DefaultArgon2Params)

	authService, err := authentication.NewService(s, tokens, hasher, limiter, specs.TokenTTL, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create authentication service: %w", err)
	}

	authMiddleware := authentication.NewMiddleware(
		tokens,
		authentication.NewResolver(s, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	tenantService := tenant.NewService(s, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(tenantService, s, tracer, monitor, logger)

	notesService := notes.NewService(s, authorizer, tracer, monitor, logger)
	usersService := users.NewService(s, authorizer, tenantService, hasher, tracer, monitor, logger)

	router := web.NewRouter(
		authService,
		authMiddleware,
		notesService,
		tenantService,
		usersService,
		authorizer,
		dbClient,
		dependencies,
		specs.FrontendURL,
		tracer,
		monitor,
		logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	// the grpc listener only carries the standard health protocol for orchestrators
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Starting gRPC health server on port %v", specs.GRPCPort)
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		logger.Security().SystemStartup()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		logger.Security().SystemShutdown()
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		return nil
	})

	return g.Wait()
}
