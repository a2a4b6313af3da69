package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scaptail/scaptail/internal/repository"
	"github.com/scaptail/scaptail/internal/session"
	"github.com/scaptail/scaptail/internal/tui"
	"github.com/scaptail/scaptail/internal/xccdf"
)

func newEditCmd(app *App) *cobra.Command {
	var (
		profileID string
		forceNew  bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive tailoring editor",
		Long: "Opens the tailoring editor on the bundled benchmark. Without --profile\n" +
			"a fresh profile is created; it is only kept if the tailoring is\n" +
			"confirmed with ctrl+s.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			ctx := cmd.Context()
			benchmark := app.Benchmark()

			newProfile := profileID == ""
			var profile *xccdf.Profile
			if newProfile {
				profile = freshProfile()
			} else {
				var err error
				profile, err = app.Tailorings.Load(ctx, profileID)
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("profile not found: %q", profileID)
				}
				if err != nil {
					return fmt.Errorf("loading profile: %w", err)
				}
			}

			var opts []session.Option
			if verbose {
				opts = append(opts, session.WithObserver(session.NewLogObserver(cmd.ErrOrStderr())))
			}

			var (
				accepted  bool
				finishErr error
			)
			finished := func(isNew, ok bool) {
				accepted = ok
				switch {
				case ok:
					finishErr = app.Tailorings.Save(ctx, benchmark.ID, profile)
				case isNew:
					// A discarded profile leaves no stored row behind.
					finishErr = app.Tailorings.Delete(ctx, profile.ID)
				}
			}

			policy := xccdf.NewPolicy(benchmark, profile)
			sess, err := session.New(policy, benchmark, newProfile, finished, opts...)
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(sess), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			if finishErr != nil {
				return fmt.Errorf("finishing tailoring: %w", finishErr)
			}

			out := cmd.OutOrStdout()
			if accepted {
				fmt.Fprintf(out, "Saved profile %q.\n", profile.ID)
			} else {
				fmt.Fprintln(out, "Changes discarded.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "edit a saved profile instead of creating a new one")
	cmd.Flags().BoolVar(&forceNew, "new", false, "create a new profile (the default when --profile is absent)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every editor command to stderr")
	cmd.MarkFlagsMutuallyExclusive("profile", "new")
	return cmd
}

// freshProfile seeds a new profile with editable default-language text.
func freshProfile() *xccdf.Profile {
	return &xccdf.Profile{
		ID:           fmt.Sprintf("xccdf_scaptail_profile_%s", uuid.NewString()[:8]),
		Titles:       []xccdf.TextEntry{{Lang: xccdf.DefaultLang, Text: "New Profile"}},
		Descriptions: []xccdf.TextEntry{{Lang: xccdf.DefaultLang, Text: ""}},
	}
}
