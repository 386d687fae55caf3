// Command folio serves and exports the portfolio site.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/logging"
	"folio.dev/internal/models"
)

var (
	cfgFile     string
	contentPath string
	logLevel    string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio site",
	Long: `folio renders a personal portfolio (home, about, projects, project
detail and contact views) from a single JSON or YAML content file and relays
contact messages through an email API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if contentPath != "" {
			cfg.Content.Path = contentPath
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		logger, err = logging.New(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content file (overrides content.path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd, exportCmd, checkCmd)
}

// loadSite reads the configured content file
func loadSite() (*models.Portfolio, error) {
	site, err := content.Load(cfg.Content.Path)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return site, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
