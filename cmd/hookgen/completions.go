package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/catalog"
	"github.com/raphi011/hookgen/internal/config"
)

// completeHookNames provides hook name completion for --only.
func completeHookNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range catalog.Names() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeActionNames provides action name completion for --action.
// Local config actions at the working directory are included.
func completeActionNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	eff := cfg
	if local, err := config.LoadLocal(workDir); err == nil {
		eff = config.MergeLocal(cfg, local)
	}

	var matches []string
	for name, action := range eff.Actions.Actions {
		if !strings.HasPrefix(name, toComplete) {
			continue
		}
		if action.Description != "" {
			matches = append(matches, name+"\t"+action.Description)
		} else {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeScanPolicies provides completion for --scan.
func completeScanPolicies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{config.ScanShallow, config.ScanDeep}, cobra.ShellCompDirectiveNoFileComp
}
