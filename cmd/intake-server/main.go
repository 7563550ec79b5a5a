package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-intake/internal/config"
	"github.com/goliatone/go-intake/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "intake-server",
		Short: "Development claims API for prior authorization intake",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the claims API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(envFile)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to an optional env file")
	return cmd
}

func runServer(envFile string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadFile(envFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	srv := server.New(cfg, logger)

	// Graceful shutdown
	go func() {
		logger.Info().Str("addr", cfg.Address()).Msg("starting claims API")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
