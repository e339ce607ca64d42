// Package main is the entry point for the pancast command line tool
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pancasting/internal/config"
	"github.com/KirkDiggler/pancasting/internal/errors"
)

var (
	cfg     *config.Config
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "pancast",
	Short: "PanCasting character tools",
	Long: `pancast inspects PanCasting characters: it converts them to D&D 3.5 or 5th
edition sheets, suggests classes and backgrounds, validates them and shows the
generation step catalog.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(importCmd)
}

// setup loads .env and the environment config, then installs the logger
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to load %s", envFile)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return nil
}
