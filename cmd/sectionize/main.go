// Package main provides the CLI entry point for sectionize.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekMane57/sectionize/internal/logger"
	"github.com/VivekMane57/sectionize/pkg/sectionize"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	log  *zap.Logger
	opts sectionize.Options
)

var (
	okStyle   = color.New(color.FgHiGreen)
	warnStyle = color.New(color.FgHiYellow)
	failStyle = color.New(color.FgHiRed)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sectionize",
		Short: "Extract named metric sections from semi-structured spreadsheets",
		Long: `sectionize splits workbook sheets into blocks, recognizes their headers and
layout, and writes every table as a named section of normalized metric records.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.toml or .yaml); default $SECTIONIZE_CONFIG or the XDG config dir")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $SECTIONIZE_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console, json")

	rootCmd.AddCommand(newTransformCmd(), newRawCmd(), newServeCmd())
	return rootCmd
}

// setup loads .env, the logger and the options shared by every subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	level := firstNonEmpty(logLevel, os.Getenv("SECTIONIZE_LOG_LEVEL"), "info")
	l, err := logger.New(level, logFormat)
	if err != nil {
		return err
	}
	log = l.With(zap.String("run_id", uuid.NewString()))

	path := firstNonEmpty(configPath, os.Getenv("SECTIONIZE_CONFIG"), sectionize.FindConfig())
	opts, err = sectionize.LoadOptions(path)
	if err != nil {
		return err
	}
	if path != "" {
		log.Debug("config loaded", zap.String("path", path))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
