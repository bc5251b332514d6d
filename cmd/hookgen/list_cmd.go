package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/catalog"
	"github.com/raphi011/hookgen/internal/output"
	"github.com/raphi011/hookgen/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the hook catalog",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the hooks this tool stamps.

The catalog is fixed at build time; every entry is written as
<source-root>/hooks/<name>.ts.`,
		Example: `  hookgen list         # Show the catalog
  hookgen list --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			entries := catalog.Entries()

			if jsonOutput {
				return out.JSON(entries)
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Name, e.File, e.Description}
			}
			out.Print(static.RenderTable([]string{"NAME", "FILE", "DESCRIPTION"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
