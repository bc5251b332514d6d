package config

import "maps"

// MergeLocal merges a local per-project config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	// Scan (replace)
	if local.Scan != "" {
		merged.Scan = local.Scan
	}

	// Skip (append with dedup)
	if len(local.Skip) > 0 {
		merged.Skip = appendUnique(global.Skip, local.Skip)
	}

	// Actions by name: local overrides/adds, enabled=false removes
	merged.Actions = mergeActions(global.Actions, local.Actions)

	return &merged
}

// mergeActions merges local actions into global actions.
// Local actions with the same name override global actions.
// Local actions with enabled=false remove the global action.
func mergeActions(global, local ActionsConfig) ActionsConfig {
	merged := ActionsConfig{
		Actions: make(map[string]Action, len(global.Actions)),
	}

	maps.Copy(merged.Actions, global.Actions)

	for name, action := range local.Actions {
		if !action.IsEnabled() {
			delete(merged.Actions, name)
			continue
		}
		merged.Actions[name] = action
	}

	return merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
