package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Scan policy names accepted in config and on the command line.
const (
	ScanShallow = "shallow"
	ScanDeep    = "deep"
)

// Action defines a post-generate command
type Action struct {
	Command     string   `toml:"command"`
	Description string   `toml:"description"`
	On          []string `toml:"on"`      // triggers this action runs on (empty = only via --action)
	Enabled     *bool    `toml:"enabled"` // local configs set false to disable a global action
}

// IsEnabled reports whether the action is active. Unset means enabled.
func (a Action) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// ActionsConfig holds action-related configuration
type ActionsConfig struct {
	Actions map[string]Action `toml:"-"` // parsed from [actions.NAME] sections
}

// Config holds the hookgen configuration
type Config struct {
	Scan    string        `toml:"scan" json:"scan"`
	Skip    []string      `toml:"skip" json:"skip,omitempty"`
	Actions ActionsConfig `toml:"-" json:"-"` // custom parsing needed
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Scan: ScanShallow,
		Actions: ActionsConfig{
			Actions: make(map[string]Action),
		},
	}
}

// configPath returns the path to the global config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hookgen", "config.toml"), nil
}

// GlobalConfigPath returns the global config file location for display.
func GlobalConfigPath() string {
	path, err := configPath()
	if err != nil {
		return "~/.config/hookgen/config.toml"
	}
	return path
}

// rawConfig is used for initial TOML parsing before processing actions
type rawConfig struct {
	Scan    string         `toml:"scan"`
	Skip    []string       `toml:"skip"`
	Actions map[string]any `toml:"actions"`
}

// Load reads config from ~/.config/hookgen/config.toml
// Returns Default() if the file doesn't exist (no error)
// Returns error only if the file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Config{
		Scan:    raw.Scan,
		Skip:    raw.Skip,
		Actions: parseActionsConfig(raw.Actions),
	}

	if err := ValidateScan(cfg.Scan); err != nil {
		return Default(), err
	}
	if cfg.Scan == "" {
		cfg.Scan = ScanShallow
	}

	return cfg, nil
}

// ValidateScan checks a scan policy name. Empty means "use default".
func ValidateScan(scan string) error {
	if scan != "" && scan != ScanShallow && scan != ScanDeep {
		return fmt.Errorf("invalid scan %q: must be %q or %q", scan, ScanShallow, ScanDeep)
	}
	return nil
}

// parseActionsConfig extracts ActionsConfig from the raw TOML map.
// Handles [actions.NAME] sections.
func parseActionsConfig(raw map[string]any) ActionsConfig {
	ac := ActionsConfig{
		Actions: make(map[string]Action),
	}

	if raw == nil {
		return ac
	}

	for key, value := range raw {
		// Action definitions are tables
		actionMap, ok := value.(map[string]any)
		if !ok {
			continue
		}
		action := Action{}
		if cmd, ok := actionMap["command"].(string); ok {
			action.Command = cmd
		}
		if desc, ok := actionMap["description"].(string); ok {
			action.Description = desc
		}
		if on, ok := actionMap["on"].([]any); ok {
			for _, v := range on {
				if s, ok := v.(string); ok {
					action.On = append(action.On, s)
				}
			}
		}
		if enabled, ok := actionMap["enabled"].(bool); ok {
			action.Enabled = &enabled
		}
		ac.Actions[key] = action
	}

	return ac
}

const defaultConfig = `# hookgen configuration

# Source root scan policy: "shallow" (default) or "deep"
#
# shallow checks root/src (preferring root/src/app when nested), then
# root/app, and stops. deep walks the whole tree and takes the first
# directory named src or app. Prefer shallow; deep exists for projects
# with non-standard layouts.
# scan = "shallow"

# Extra directory names the deep scan skips, in addition to the built-in
# list (node_modules, .git, dist, build, coverage, ...).
# skip = ["generated", "storybook-static"]

# Actions - run commands after generating hooks
# Use --action=name to run a specific action, --no-actions to skip all.
#
# Actions with "on" run automatically after a successful generate.
# Actions without "on" only run when explicitly called with --action=name.
#
# [actions.fmt]
# command = "npx prettier --write {dir}"
# description = "Format generated hooks"
# on = ["generate"]  # auto-run after generate
#
# [actions.lint]
# command = "npx eslint --fix {dir}"
# description = "Fix lint issues in generated hooks"
# # no "on" - only runs via --action=lint
#
# Actions run with working directory set to the resolved source root.
#
# Available placeholders (substituted shell-quoted):
#   {dir}    - absolute path of the generated hooks folder
#   {root}   - absolute path of the resolved source root
#   {count}  - number of files written
`

// DefaultConfig returns the default global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/hookgen/config.toml
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
