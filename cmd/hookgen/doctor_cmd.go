package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/catalog"
	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/generate"
	"github.com/raphi011/hookgen/internal/output"
	"github.com/raphi011/hookgen/internal/resolve"
	"github.com/raphi011/hookgen/internal/scaffold"
	"github.com/raphi011/hookgen/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose setup issues",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Diagnose setup issues.

Checks:
- Global config file parses
- Local config file parses (if present)
- A source root resolves from the working directory
- The output folder is usable (no file squatting on hooks/)
- The embedded hook catalog is intact`,
		Example: `  hookgen doctor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			w := styles.Writer(out.Writer(), os.Environ())
			var issues int

			fmt.Fprintln(w, "Running diagnostics...")
			fmt.Fprintln(w)

			// Global config
			if _, err := config.Load(); err != nil {
				fmt.Fprintf(w, "%s Global config invalid: %v\n", styles.Fail(), err)
				issues++
			} else {
				fmt.Fprintf(w, "%s Global config OK (%s)\n", styles.OK(), config.GlobalConfigPath())
			}

			// Local config
			local, err := config.LoadLocal(workDir)
			switch {
			case err != nil:
				fmt.Fprintf(w, "%s Local config invalid: %v\n", styles.Fail(), err)
				issues++
			case local != nil:
				fmt.Fprintf(w, "%s Local config OK (%s)\n", styles.OK(), filepath.Join(workDir, config.LocalConfigFileName))
			default:
				fmt.Fprintf(w, "%s No local config (optional)\n", styles.Warn())
			}

			eff := config.MergeLocal(cfg, local)

			// Resolution from the working directory
			target := ""
			genOpts := generate.Options{Roots: []string{workDir}, Scan: eff.Scan, Skip: eff.Skip}
			candidates, err := generate.Candidates(ctx, genOpts)
			switch {
			case err != nil:
				fmt.Fprintf(w, "%s Source root scan failed: %v\n", styles.Fail(), err)
				issues++
			case len(candidates) == 0:
				fmt.Fprintf(w, "%s %v under %s\n", styles.Fail(), resolve.ErrNotFound, workDir)
				issues++
			default:
				target = candidates[0]
				fmt.Fprintf(w, "%s Source root resolves to %s\n", styles.OK(), target)
				if len(candidates) > 1 {
					fmt.Fprintf(w, "%s %d candidates found; use -i to pick one\n", styles.Warn(), len(candidates))
				}
			}

			// Output folder usable
			if target != "" {
				outDir := scaffold.OutputDir(target)
				info, err := os.Stat(outDir)
				switch {
				case err == nil && !info.IsDir():
					fmt.Fprintf(w, "%s %s exists as a file; generate would fail\n", styles.Fail(), outDir)
					issues++
				case err == nil:
					fmt.Fprintf(w, "%s Output folder exists (%s)\n", styles.OK(), outDir)
				case errors.Is(err, os.ErrNotExist):
					fmt.Fprintf(w, "%s Output folder will be created (%s)\n", styles.OK(), outDir)
				default:
					fmt.Fprintf(w, "%s Cannot stat %s: %v\n", styles.Fail(), outDir, err)
					issues++
				}
			}

			// Embedded catalog
			entries := catalog.Entries()
			broken := 0
			for _, e := range entries {
				if e.Content == "" {
					broken++
				}
			}
			if len(entries) == 0 || broken > 0 {
				fmt.Fprintf(w, "%s Embedded catalog broken (%d entries, %d empty)\n", styles.Fail(), len(entries), broken)
				issues++
			} else {
				fmt.Fprintf(w, "%s Embedded catalog intact (%d hooks)\n", styles.OK(), len(entries))
			}

			fmt.Fprintln(w)
			if issues > 0 {
				return fmt.Errorf("%d issue(s) found", issues)
			}

			fmt.Fprintln(w, "All checks passed")
			return nil
		},
	}

	return cmd
}
