package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scaptail/scaptail/internal/tui/formatter"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved tailoring profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Tailorings.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing profiles: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(profiles) == 0 {
				fmt.Fprintln(out, formatter.Dim("No saved profiles. Run 'scaptail edit' to create one."))
				return nil
			}

			for _, p := range profiles {
				fmt.Fprintf(out, "%s  %s\n", formatter.Bold(p.Title), formatter.Dim(p.ID))
				if p.Description != "" {
					fmt.Fprintf(out, "    %s\n", p.Description)
				}
				fmt.Fprintf(out, "    %s\n", formatter.Dim(fmt.Sprintf("benchmark %s, updated %s",
					p.BenchmarkID, p.UpdatedAt.Format("2006-01-02 15:04"))))
			}
			return nil
		},
	}
}
