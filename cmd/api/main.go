package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/doctor-booking/internal/audit"
	"github.com/BruksfildServices01/doctor-booking/internal/config"
	"github.com/BruksfildServices01/doctor-booking/internal/infra/repository"
	"github.com/BruksfildServices01/doctor-booking/internal/logging"
	"github.com/BruksfildServices01/doctor-booking/internal/routes"
	"github.com/BruksfildServices01/doctor-booking/internal/seed"
	"github.com/BruksfildServices01/doctor-booking/internal/timezone"
)

const (
	shutdownTimeout = 10 * time.Second
	auditRedisMax   = 10000
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "doctor-booking",
		Short:        "Doctor catalog and appointment booking API",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(doctorsCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "Print the seed doctor catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDoctors(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runServer() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store
	store := repository.NewMemoryStore(
		repository.WithClock(timezone.Clock(cfg.Timezone)),
	)
	doctors, err := seed.Load(ctx, store)
	if err != nil {
		return err
	}
	logger.Info().Int("doctors", len(doctors)).Msg("catalog seeded")

	// Audit
	sinks := []audit.Sink{audit.NewLogSink(logger)}
	if cfg.RedisURL != "" {
		client, err := audit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis audit sink disabled")
		} else {
			defer client.Close()
			sinks = append(sinks, audit.NewRedisSink(client, audit.DefaultRedisKey, auditRedisMax))
			logger.Info().Msg("redis audit sink enabled")
		}
	}
	dispatcher := audit.NewDispatcher(
		audit.New(timezone.Clock(cfg.Timezone), sinks...),
		cfg.AuditQueueSize,
		logger,
	)

	// HTTP
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Deps{
		Config: cfg,
		Repo:   store,
		Audit:  dispatcher,
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("audit queue not fully drained")
	}

	logger.Info().Msg("server stopped")
	return nil
}

func printDoctors(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store := repository.NewMemoryStore()
	doctors, err := seed.Load(ctx, store)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doctors)
}
