package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a character JSON file into the configured store",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "Character JSON file, - for stdin (required)")
	_ = importCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := a.loadCharacter(ctx, importFile, "")
	if err != nil {
		return err
	}
	if !a.store.SaveCharacter(ctx) {
		return a.store.Err()
	}

	slog.InfoContext(ctx, "character imported",
		"character_id", c.ID,
		"backend", cfg.Storage.Backend)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s as %s\n", c.Name, c.ID)
	return nil
}
