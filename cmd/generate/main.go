package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/export"
	"starfolio.dev/internal/gallery"
	"starfolio.dev/internal/services"
	"starfolio.dev/internal/site"
	"starfolio.dev/internal/util"
)

var (
	cfgFile string
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Export the portfolio as a static site",
	Long: `Writes index.html plus one <page>/index.html per page section, the
project catalog (projects.json), a starfield snapshot (starfield.json) and
every static asset. The exported site animates the starfield in the browser.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
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

		list, fallback, err := config.LoadProjectsOrDefault(cfg.Data.ProjectsFile)
		if err != nil {
			return err
		}
		if fallback {
			logger.Warn("Project catalog not found, using built-in projects", zap.String("path", cfg.Data.ProjectsFile))
		}

		projects := services.NewProjectService(list)
		doc, err := site.New(cfg.Site, projects.GetAll(), gallery.NewMarkdown())
		if err != nil {
			return err
		}

		e := &export.Exporter{
			Site:      doc,
			Projects:  projects,
			Starfield: services.NewStarfieldService(cfg.Starfield, cfg.Server.FrameRate, logger),
			AssetsDir: cfg.Server.StaticDir,
			Workers:   workers,
			Logger:    logger,
		}
		if err := e.Run(args[0], export.NewProgress()); err != nil {
			return err
		}

		fmt.Printf("Exported %d pages and %d projects to %s\n", len(doc.Pages()), projects.Count(), args[0])
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "starfolio.yml", "config file path")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 4, "parallel writers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
