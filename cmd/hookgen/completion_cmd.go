package main

import (
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators maps each supported shell to its script generator.
// Descriptions are included where the shell supports them, so completing
// --action shows the configured action descriptions inline.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "completion <shell>",
		Short:   "Generate completion script",
		GroupID: GroupConfig,
		Long: `Generate shell completion script.

Besides flags and subcommands, the script completes hook names for
--only and configured action names for --action.`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  # Fish
  hookgen completion fish > ~/.config/fish/completions/hookgen.fish

  # Bash
  hookgen completion bash > ~/.local/share/bash-completion/completions/hookgen

  # Zsh
  hookgen completion zsh > ~/.zfunc/_hookgen
  # Then add ~/.zfunc to fpath in .zshrc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
