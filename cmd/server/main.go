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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/handlers"
	"starfolio.dev/internal/util"
)

var (
	cfgFile string
	addr    string
)

var rootCmd = &cobra.Command{
	Use:   "starfolio",
	Short: "Serve the starfield portfolio",
	Long: `Serves the single-page portfolio: the page sections with client-side
navigation, the project gallery, and the animated starfield background
streamed over a websocket.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if addr != "" {
			cfg.Server.Addr = addr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return serve(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "starfolio.yml", "config file path")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cfg *config.Config) error {
	// Initialize logger
	logger, err := util.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	projects, fallback, err := config.LoadProjectsOrDefault(cfg.Data.ProjectsFile)
	if err != nil {
		logger.Error("Failed to load projects", zap.String("path", cfg.Data.ProjectsFile), zap.Error(err))
		return err
	}
	if fallback {
		logger.Warn("Project catalog not found, using built-in projects", zap.String("path", cfg.Data.ProjectsFile))
	}

	handler, err := handlers.SetupRoutes(cfg, projects, logger)
	if err != nil {
		logger.Error("Failed to build routes", zap.Error(err))
		return err
	}

	// Cancelled on shutdown so open starfield streams end; Shutdown does
	// not wait for hijacked connections.
	baseCtx, stopStreams := context.WithCancel(context.Background())
	defer stopStreams()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("Server starting",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("projects", len(projects.Projects)),
		zap.Int("frame_rate", cfg.Server.FrameRate),
	)

	// Wait for termination signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("Server error", zap.Error(err))
		return err
	}

	logger.Info("Shutting down gracefully...")
	stopStreams()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return err
	}

	logger.Info("Shutdown complete")
	return nil
}
