// Package cli wires the scaptail commands: the interactive tailoring
// editor plus plumbing to list and delete saved profiles.
package cli

import (
	"strings"

	"github.com/scaptail/scaptail/internal/repository"
	"github.com/scaptail/scaptail/internal/xccdf"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the dependencies CLI commands run against.
type App struct {
	Tailorings repository.TailoringRepo

	// Benchmark loads the document being tailored.
	Benchmark func() *xccdf.Item

	// IsInteractive reports whether stdin is a terminal; the editor
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "scaptail" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scaptail",
		Short: "Tailor security benchmark profiles",
		Long: "scaptail edits tailoring profiles for a security benchmark:\n" +
			"rule and group selections, value overrides, and profile metadata,\n" +
			"with full undo history.",
	}

	// Accept underscores in flag names, e.g. --profile_id.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newEditCmd(app),
		newListCmd(app),
		newDeleteCmd(app),
	)

	return root
}
