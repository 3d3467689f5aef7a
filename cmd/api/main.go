package main

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

	"animal-shelter/internal/platform/config"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// @title Animal Shelter API
// @version 1.0
// @description Registro de animales, staff y adopciones de un refugio (en memoria).
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Animal shelter HTTP API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.LogLevel),
				Format: logger.ParseFormat(cfg.LogFormat),
				App:    cfg.AppName,
				Output: cmd.OutOrStdout(),
			})
			if zl, ok := log.(*logger.ZapLogger); ok {
				defer func() { _ = zl.Sync() }()
			}

			return serve(cmd.Context(), cfg, log)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml); default $SHELTER_CONFIG")

	return cmd
}

// serve atiende hasta que ctx se cancela y espera el shutdown antes de volver.
func serve(ctx context.Context, cfg config.Config, log logger.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}

	srv := &http.Server{
		Handler:      router.NewRouter(router.Options{Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": ln.Addr().String()})
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		return err
	}
	<-done
	log.Info("server stopped", nil)
	return nil
}
