package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/log"
	"github.com/raphi011/hookgen/internal/output"
	"github.com/raphi011/hookgen/internal/ui/static"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage hookgen configuration.

Global config: ~/.config/hookgen/config.toml
Local config:  .hookgen.toml (at the search root)`,
		Example: `  hookgen config init          # Create default global config
  hookgen config init --local  # Create local project config
  hookgen config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates global config at ~/.config/hookgen/config.toml.
With --local, creates a per-project config at .hookgen.toml in the
working directory.`,
		Example: `  hookgen config init           # Create global config
  hookgen config init --local   # Create local project config
  hookgen config init -f        # Overwrite existing config
  hookgen config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if local {
				return initLocalConfig(out, force, stdout)
			}
			return initGlobalConfig(out, force, stdout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-project .hookgen.toml instead of global config")

	return cmd
}

func initGlobalConfig(out *output.Printer, force, stdout bool) error {
	if stdout {
		out.Print(config.DefaultConfig())
		return nil
	}

	path, err := config.Init(force)
	if err != nil {
		return err
	}

	out.Printf("Created config file: %s\n", path)
	return nil
}

func initLocalConfig(out *output.Printer, force, stdout bool) error {
	if stdout {
		out.Print(config.DefaultLocalConfig())
		return nil
	}

	configPath := filepath.Join(workDir, config.LocalConfigFileName)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("local config already exists: %s (use -f to overwrite)", configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultLocalConfig()), 0644); err != nil {
		return err
	}

	out.Printf("Created local config: %s\n", configPath)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

When the working directory holds a .hookgen.toml, shows the merged config
with source annotations (global vs local). Otherwise shows global config
only.`,
		Example: `  hookgen config show         # Show config (merged if local config exists)
  hookgen config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			local, err := config.LoadLocal(workDir)
			if err != nil {
				l.Printf("Warning: %v (using global config)\n", err)
			}
			eff := config.MergeLocal(cfg, local)

			if jsonOutput {
				return out.JSON(eff)
			}

			out.Printf("Global config: %s\n", config.GlobalConfigPath())
			if local != nil {
				out.Printf("Local config:  %s\n", filepath.Join(workDir, config.LocalConfigFileName))
			} else {
				out.Printf("Local config:  (none)\n")
			}
			out.Println()

			source := func(isLocal bool) string {
				if isLocal {
					return " (local)"
				}
				return ""
			}

			skip := "(defaults only)"
			if len(eff.Skip) > 0 {
				skip = strings.Join(eff.Skip, ", ")
			}

			out.Print(static.RenderKeyValues([][2]string{
				{"scan", eff.Scan + source(local != nil && local.Scan != "")},
				{"skip", skip},
				{"actions", fmt.Sprintf("%d configured", len(eff.Actions.Actions))},
			}))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
