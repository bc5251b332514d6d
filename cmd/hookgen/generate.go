package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/actions"
	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/generate"
	"github.com/raphi011/hookgen/internal/log"
	"github.com/raphi011/hookgen/internal/output"
	"github.com/raphi011/hookgen/internal/resolve"
	"github.com/raphi011/hookgen/internal/ui/prompt"
	"github.com/raphi011/hookgen/internal/ui/styles"
)

type generateOptions struct {
	dir         string
	scan        string
	only        []string
	dryRun      bool
	interactive bool
	copyPath    bool
	action      string
	noActions   bool
}

// addGenerateFlags wires the generation flags and run function onto the
// root command, which doubles as the zero-argument generate entry point.
func addGenerateFlags(cmd *cobra.Command) {
	opts := &generateOptions{}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Search root (default: working directory)")
	cmd.Flags().StringVar(&opts.scan, "scan", "", "Scan policy: shallow or deep")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "Stamp only the named hooks")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show what would be written without writing")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Pick the target directory interactively")
	cmd.Flags().BoolVar(&opts.copyPath, "copy", false, "Copy the output folder path to the clipboard")
	cmd.Flags().StringVar(&opts.action, "action", "", "Run a specific configured action afterwards")
	cmd.Flags().BoolVar(&opts.noActions, "no-actions", false, "Skip all configured actions")
	cmd.MarkFlagsMutuallyExclusive("action", "no-actions")

	cmd.RegisterFlagCompletionFunc("only", completeHookNames)
	cmd.RegisterFlagCompletionFunc("action", completeActionNames)
	cmd.RegisterFlagCompletionFunc("scan", completeScanPolicies)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), cfg, workDir, *opts)
	}
}

func runGenerate(ctx context.Context, globalCfg *config.Config, workDir string, opts generateOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	root := workDir
	if opts.dir != "" {
		abs, err := filepath.Abs(opts.dir)
		if err != nil {
			return fmt.Errorf("resolve search root: %w", err)
		}
		root = abs
	}

	// Per-project overrides live at the search root.
	local, err := config.LoadLocal(root)
	if err != nil {
		l.Printf("Warning: %v (using global config)\n", err)
	}
	eff := config.MergeLocal(globalCfg, local)

	scan := eff.Scan
	if opts.scan != "" {
		if err := config.ValidateScan(opts.scan); err != nil {
			return err
		}
		scan = opts.scan
	}

	genOpts := generate.Options{
		Roots:  []string{root},
		Scan:   scan,
		Skip:   eff.Skip,
		Only:   opts.only,
		DryRun: opts.dryRun,
	}

	if opts.interactive {
		target, cancelled, err := selectTarget(ctx, genOpts)
		if err != nil {
			return err
		}
		if cancelled {
			l.Println("Cancelled.")
			return nil
		}
		genOpts.Target = target
	}

	result, err := generate.Run(ctx, genOpts)
	if err != nil {
		// A partial failure still wrote something; say what survived.
		if result != nil && len(result.Written) > 0 {
			l.Printf("Wrote %d file(s) before failing:\n", len(result.Written))
			for _, path := range result.Written {
				l.Printf("  %s\n", path)
			}
		}
		return err
	}

	w := styles.Writer(out.Writer(), os.Environ())
	if result.DryRun {
		for _, path := range result.Written {
			fmt.Fprintf(w, "[dry-run] would write %s\n", path)
		}
		fmt.Fprintf(w, "%s would write %d hooks to %s\n", styles.OK(), len(result.Written), result.Dir)
	} else {
		if l.IsVerbose() {
			for _, path := range result.Written {
				l.Printf("  wrote %s\n", path)
			}
		}
		fmt.Fprintf(w, "%s wrote %d hooks to %s\n", styles.OK(), len(result.Written), result.Dir)
	}

	if opts.copyPath && !result.DryRun {
		if err := clipboard.WriteAll(result.Dir); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	matches, err := actions.Select(eff.Actions, opts.action, opts.noActions, actions.TriggerGenerate)
	if err != nil {
		return err
	}
	if len(matches) > 0 && len(result.Written) > 0 {
		actions.RunAllNonFatal(ctx, matches, actions.Context{
			Dir:    result.Dir,
			Root:   result.Target,
			Count:  len(result.Written),
			DryRun: result.DryRun,
		})
	}

	return nil
}

// selectTarget gathers all source-root candidates for the active policy and
// lets the user pick one. Requires a terminal.
func selectTarget(ctx context.Context, genOpts generate.Options) (target string, cancelled bool, err error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", false, fmt.Errorf("--interactive requires a terminal")
	}

	candidates, err := generate.Candidates(ctx, genOpts)
	if err != nil {
		return "", false, err
	}

	switch len(candidates) {
	case 0:
		return "", false, fmt.Errorf("%w under %s", resolve.ErrNotFound, genOpts.Roots[0])
	case 1:
		return candidates[0], false, nil
	}

	result, err := prompt.Select("Stamp hooks under", genOpts.Roots[0], candidates)
	if err != nil {
		return "", false, err
	}
	if result.Cancelled {
		return "", true, nil
	}
	return result.Value, false, nil
}
