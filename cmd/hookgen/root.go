package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/log"
	"github.com/raphi011/hookgen/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command. Called without a subcommand it runs
// the generation itself: resolve the source root, stamp the hook catalog.
var rootCmd = &cobra.Command{
	Use:   "hookgen",
	Short: "Stamp a catalog of React hooks into your project",
	Long: `hookgen locates your project's source root (src, src/app or app) and
writes a fixed catalog of React hook files into a hooks/ folder beneath it.

Re-running always restores the canonical templates: existing hook files of
the same name are overwritten without prompting. Other files are left alone.`,
	Example: `  hookgen                      # Stamp all hooks under the resolved source root
  hookgen -n                   # Show what would be written
  hookgen --only useDebounce   # Stamp a subset of the catalog
  hookgen -C ~/code/web        # Search from a different directory
  hookgen --scan deep          # Legacy recursive source-root search`,
	Args:                       cobra.NoArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		// Flags are parsed by now; rebuild the context logger so -v and
		// -q take effect for the command about to run.
		base := log.FromContext(cmd.Context())
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(base.Writer(), verbose, quiet)))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hookgen: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Diagnostics go to stderr. Verbose and quiet are applied in
	// PersistentPreRunE once flags are parsed.
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'hookgen -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output and per-file writes")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// The root command doubles as the generate command.
	addGenerateFlags(rootCmd)

	// Core commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDoctorCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
