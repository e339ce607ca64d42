package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/services/conversion"
)

var (
	convertFile        string
	convertID          string
	convertEdition     string
	convertFormat      string
	convertSuggestions bool
	convertValidation  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a character to a D&D character sheet",
	Long:  `Convert a PanCasting character to a D&D 3.5 or 5th edition sheet as JSON or text.`,
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFile, "file", "", "Character JSON file, - for stdin")
	convertCmd.Flags().StringVar(&convertID, "id", "", "Character ID in the configured store")
	convertCmd.Flags().StringVar(&convertEdition, "edition", "", "Target edition: 3.5 or 5e (default from PANCAST_DEFAULT_EDITION)")
	convertCmd.Flags().StringVar(&convertFormat, "format", conversion.FormatText, "Output format: json, text or pdf")
	convertCmd.Flags().BoolVar(&convertSuggestions, "suggestions", false, "Include class and background suggestions")
	convertCmd.Flags().BoolVar(&convertValidation, "validation", false, "Include the validation report (json only)")
	convertCmd.MarkFlagsMutuallyExclusive("file", "id")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := a.loadCharacter(ctx, convertFile, convertID)
	if err != nil {
		return err
	}

	result, err := conversion.NewService().ExportCharacter(ctx, c, editionOrDefault(convertEdition), conversion.ExportOptions{
		Format:             convertFormat,
		IncludeSuggestions: convertSuggestions,
		IncludeValidation:  convertValidation,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return errors.FailedPreconditionf("export failed: %s", strings.Join(result.Errors, "; ")).
			WithMeta("format", convertFormat)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Data)
	return nil
}
