package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <profile-id>",
		Short: "Delete a saved tailoring profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			ctx := cmd.Context()

			exists, err := app.Tailorings.Exists(ctx, id)
			if err != nil {
				return fmt.Errorf("checking profile: %w", err)
			}
			if !exists {
				return fmt.Errorf("profile not found: %q", id)
			}

			if err := app.Tailorings.Delete(ctx, id); err != nil {
				return fmt.Errorf("deleting profile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q.\n", id)
			return nil
		},
	}
}
