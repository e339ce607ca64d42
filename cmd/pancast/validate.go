package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/services/conversion"
)

var (
	validateFile    string
	validateID      string
	validateEdition string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a character",
	Long:  `Run the character checks and the edition-specific conversion checks. Exits non-zero on errors.`,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "Character JSON file, - for stdin")
	validateCmd.Flags().StringVar(&validateID, "id", "", "Character ID in the configured store")
	validateCmd.Flags().StringVar(&validateEdition, "edition", "", "Target edition: 3.5 or 5e (default from PANCAST_DEFAULT_EDITION)")
	validateCmd.MarkFlagsMutuallyExclusive("file", "id")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := a.loadCharacter(ctx, validateFile, validateID)
	if err != nil {
		return err
	}

	edition := editionOrDefault(validateEdition)
	report, err := conversion.NewService().ValidateCharacter(c, edition)
	if err != nil {
		return err
	}
	basic := a.store.ValidateCharacter()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Character: %s\n", a.store.Summary())
	printFindings(out, "Character", basic.Errors, basic.Warnings)
	printFindings(out, "D&D "+edition, report.Errors, report.Warnings)
	if report.LevelAppropriate != nil {
		fmt.Fprintf(out, "Level appropriate: %t\n", *report.LevelAppropriate)
	}

	if !basic.IsValid || !report.IsValid {
		return errors.InvalidArgumentf("character %s is not valid", c.ID).WithMeta("character_id", c.ID)
	}
	fmt.Fprintln(out, "OK")
	return nil
}

func printFindings(out io.Writer, label string, errs, warnings []string) {
	for _, e := range errs {
		fmt.Fprintf(out, "  [%s] error: %s\n", label, e)
	}
	for _, w := range warnings {
		fmt.Fprintf(out, "  [%s] warning: %s\n", label, w)
	}
}
