package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/services/conversion"
)

var (
	suggestFile    string
	suggestID      string
	suggestEdition string
	suggestLimit   int
	suggestReasons bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest D&D classes and backgrounds for a character",
	Long:  `Rank the edition's classes (and 5e backgrounds) by how well they fit the character's history.`,
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestFile, "file", "", "Character JSON file, - for stdin")
	suggestCmd.Flags().StringVar(&suggestID, "id", "", "Character ID in the configured store")
	suggestCmd.Flags().StringVar(&suggestEdition, "edition", "", "Target edition: 3.5 or 5e (default from PANCAST_DEFAULT_EDITION)")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 5, "Number of suggestions to show")
	suggestCmd.Flags().BoolVar(&suggestReasons, "reasons", false, "Show why each suggestion fits")
	suggestCmd.MarkFlagsMutuallyExclusive("file", "id")
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := a.loadCharacter(ctx, suggestFile, suggestID)
	if err != nil {
		return err
	}

	edition := editionOrDefault(suggestEdition)
	svc := conversion.NewService()
	out := cmd.OutOrStdout()

	classes, err := svc.SuggestClasses(c, edition)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Class suggestions for %s (D&D %s)\n", c.Name, edition)
	for i, cs := range classes {
		if i >= suggestLimit {
			break
		}
		fmt.Fprintf(out, "  %d. %-10s %3d  %s  (d%d)\n", i+1, cs.Name, cs.Suitability, cs.Potential, cs.HitDie)
		if suggestReasons && len(cs.Reasons) > 0 {
			fmt.Fprintf(out, "     %s\n", strings.Join(cs.Reasons, ", "))
		}
	}

	backgrounds, err := svc.SuggestBackgrounds(c, edition)
	if errors.IsFailedPrecondition(err) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBackground suggestions\n")
	for i, bg := range backgrounds {
		if i >= suggestLimit {
			break
		}
		fmt.Fprintf(out, "  %d. %-14s %3d  %s  [%s]\n", i+1, bg.Name, bg.Suitability, bg.Potential, strings.Join(bg.SkillProficiencies, ", "))
	}
	return nil
}
