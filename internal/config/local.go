package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project config file, looked up at the
// search root.
const LocalConfigFileName = ".hookgen.toml"

// LocalConfig holds per-project configuration overrides from .hookgen.toml.
// Zero-value fields indicate "not set" (inherit from global).
type LocalConfig struct {
	Scan    string        `toml:"scan"`
	Skip    []string      `toml:"skip"` // appended to global skip names
	Actions ActionsConfig `toml:"-"`    // merged by name into global
}

// rawLocalConfig is used for initial TOML parsing before processing actions
type rawLocalConfig struct {
	Scan    string         `toml:"scan"`
	Skip    []string       `toml:"skip"`
	Actions map[string]any `toml:"actions"`
}

// LoadLocal reads a per-project .hookgen.toml from the given directory.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var raw rawLocalConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	local := &LocalConfig{
		Scan:    raw.Scan,
		Skip:    raw.Skip,
		Actions: parseActionsConfig(raw.Actions),
	}

	if err := ValidateScan(local.Scan); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return local, nil
}

// defaultLocalConfig is the template for hookgen config init --local
const defaultLocalConfig = `# hookgen local config (per-project overrides)
# Place this file at the directory you run hookgen from.
# Settings here override the global ~/.config/hookgen/config.toml for
# this project only.

# Scan policy override
# scan = "deep"

# Skip names (added to the global skip list)
# skip = ["generated"]

# Actions - add project-specific actions or override global ones
# Set enabled = false to disable a global action for this project.
#
# [actions.fmt]
# command = "npx prettier --write {dir}"
# description = "Format generated hooks"
# on = ["generate"]
#
# [actions.global-action-name]
# enabled = false  # Disable this global action for this project
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
