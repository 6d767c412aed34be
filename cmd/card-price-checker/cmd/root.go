// Package cmd implements the CLI commands for card-price-checker.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-checker/internal/config"
	"github.com/donaldgifford/card-price-checker/pkg/logger"
)

var (
	cfgFile  string
	envFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "card-price-checker",
	Short: "Price graded trading cards against SNKRDUNK",
	Long: "Turns a marketplace card title into a SNKRDUNK catalog match and reports\n" +
		"live ask, trimmed-mean sold price, 30-day volume, and weekly buckets for a grade.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "override logging.level from the config")

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(lookupCommand())
	rootCmd.AddCommand(normalizeCommand())
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root command, for documentation generators.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file. A missing file at the default path
// falls back to built-in defaults so one-off lookups need no setup.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if _, statErr := os.Stat(cfgFile); errors.Is(statErr, fs.ErrNotExist) &&
			!cmd.Flags().Changed("config") {
			cfg = config.Default()
		} else {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(l)
	return l
}
