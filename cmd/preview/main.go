package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/models"
	"starfolio.dev/internal/preview/window"
	"starfolio.dev/internal/services"
	"starfolio.dev/internal/util"
)

var (
	cfgFile string
	width   int
	height  int
)

var rootCmd = &cobra.Command{
	Use:          "preview",
	Short:        "Preview the starfield background in a desktop window",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := util.NewLogger(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Sync()

		opts := services.NewStarfieldService(cfg.Starfield, cfg.Server.FrameRate, logger).Options()
		logger.Info("Opening preview",
			zap.Int("stars", opts.Count),
			zap.Uint64("seed", opts.Seed),
			zap.Int("width", width),
			zap.Int("height", height),
		)
		return window.Run(opts, models.Viewport{Width: width, Height: height}, logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "starfolio.yml", "config file path")
	rootCmd.Flags().IntVar(&width, "width", 960, "window width")
	rootCmd.Flags().IntVar(&height, "height", 540, "window height")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
