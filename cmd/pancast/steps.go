package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pancasting/internal/progress"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the generation step catalog",
	Long:  `Print every generation step with its tables, dependencies and whether it is required.`,
	RunE:  runSteps,
}

func runSteps(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, s := range progress.DefaultCatalog() {
		required := "optional"
		if s.Required {
			required = "required"
		}
		fmt.Fprintf(out, "%d. %s (%s, %s)\n", s.Order, s.Title, s.ID, required)
		fmt.Fprintf(out, "   %s\n", s.Description)
		fmt.Fprintf(out, "   tables: %s\n", strings.Join(s.TableIDs, ", "))
		if len(s.Dependencies) > 0 {
			fmt.Fprintf(out, "   after: %s\n", strings.Join(s.Dependencies, ", "))
		}
	}
	return nil
}
