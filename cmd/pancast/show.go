package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/orchestrators/generation"
	"github.com/KirkDiggler/pancasting/internal/progress"
	"github.com/KirkDiggler/pancasting/internal/services/conversion"
)

var (
	showFile string
	showID   string
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a character summary",
	Long:  `Print a one-line summary, active modifiers and the saved generation history of a character.`,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFile, "file", "", "Character JSON file, - for stdin")
	showCmd.Flags().StringVar(&showID, "id", "", "Character ID in the configured store")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the full character JSON")
	showCmd.MarkFlagsMutuallyExclusive("file", "id")
}

func runShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := a.loadCharacter(ctx, showFile, showID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		fmt.Fprintln(out, a.store.ExportCharacter())
		return nil
	}

	fmt.Fprintln(out, a.store.Summary())
	fmt.Fprintf(out, "Total modifier: %+d\n", a.store.CalculateTotalModifier(""))
	mods := a.store.ActiveModifiers()
	for _, key := range slices.Sorted(maps.Keys(mods)) {
		fmt.Fprintf(out, "  %s: %+d\n", key, mods[key])
	}

	engine, err := progress.NewEngine(&progress.Config{
		KV:          a.kv,
		IDGenerator: a.ids,
		Clock:       a.clock,
	})
	if err != nil {
		return err
	}
	o, err := generation.New(&generation.Config{
		Store:          a.store,
		Engine:         engine,
		Converter:      conversion.NewService(),
		KV:             a.kv,
		IDGenerator:    a.ids,
		Clock:          a.clock,
		MaxHistorySize: cfg.HistoryMaxSize,
	})
	if err != nil {
		return err
	}

	cache, err := o.LoadHistoryCache(ctx, c.ID)
	if errors.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRecent history (session %s)\n", cache.SessionID)
	for _, e := range cache.Entries {
		fmt.Fprintf(out, "  - %s\n", e.Description)
	}
	return nil
}
