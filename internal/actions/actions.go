// Package actions runs config-declared commands after a generate.
//
// Actions are shell commands from [actions.NAME] config sections. They run
// with the working directory set to the resolved source root, after the
// hook files are on disk. A failing action is a warning: the generated
// files are never rolled back.
package actions

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/log"
)

// Trigger identifies which operation is triggering the action.
type Trigger string

// TriggerGenerate fires after a successful generate run.
const TriggerGenerate Trigger = "generate"

// Context holds the values for placeholder substitution.
type Context struct {
	Dir    string // absolute path of the generated hooks folder
	Root   string // absolute path of the resolved source root
	Count  int    // number of files written
	DryRun bool   // if true, print commands instead of executing
}

// Match represents an action that matched the current trigger.
type Match struct {
	Action *config.Action
	Name   string
}

// Select determines which actions to run based on config and CLI flags.
// If actionName is set, only that action runs (its "on" list is ignored).
// Otherwise every action whose "on" list contains the trigger runs.
// Returns a nil slice if nothing should run, an error if the named action
// doesn't exist.
func Select(cfg config.ActionsConfig, actionName string, noActions bool, trigger Trigger) ([]Match, error) {
	if noActions {
		return nil, nil
	}

	if actionName != "" {
		action, exists := cfg.Actions[actionName]
		if !exists {
			return nil, fmt.Errorf("unknown action %q", actionName)
		}
		return []Match{{Action: &action, Name: actionName}}, nil
	}

	var matches []Match
	for name, action := range cfg.Actions {
		if len(action.On) > 0 && matchesTrigger(action, trigger) {
			actionCopy := action
			matches = append(matches, Match{Action: &actionCopy, Name: name})
		}
	}
	return matches, nil
}

// matchesTrigger returns true if trigger is in the action's "on" list.
// The value "all" matches every trigger.
func matchesTrigger(action config.Action, trigger Trigger) bool {
	for _, t := range action.On {
		if t == "all" || t == string(trigger) {
			return true
		}
	}
	return false
}

// RunAllNonFatal runs all matched actions, logging failures as warnings.
// The generate result stands regardless of action outcomes.
func RunAllNonFatal(ctx context.Context, matches []Match, actx Context) {
	l := log.FromContext(ctx)
	for _, match := range matches {
		if err := runAction(ctx, match.Name, match.Action, actx); err != nil {
			l.Printf("Warning: action %q failed: %v\n", match.Name, err)
		}
	}
}

// runAction executes a single action with placeholder substitution.
func runAction(ctx context.Context, name string, action *config.Action, actx Context) error {
	l := log.FromContext(ctx)
	cmd := Substitute(action.Command, actx)

	if actx.DryRun {
		l.Printf("[dry-run] %s: %s\n", name, cmd)
		return nil
	}

	l.Printf("Running action '%s'...\n", name)

	start := time.Now()
	done := l.Command(actx.Root, "sh", "-c", cmd)

	shellCmd := exec.CommandContext(ctx, "sh", "-c", cmd)
	shellCmd.Dir = actx.Root
	shellCmd.Stdout = os.Stdout
	shellCmd.Stderr = os.Stderr

	err := shellCmd.Run()
	done(time.Since(start))
	if err != nil {
		return err
	}

	if action.Description != "" {
		l.Printf("  %s\n", action.Description)
	}
	return nil
}

// Substitute replaces {dir}, {root} and {count} in command.
// Path values are shell-quoted; count is a bare integer.
func Substitute(command string, actx Context) string {
	replacer := strings.NewReplacer(
		"{dir}", shellQuote(actx.Dir),
		"{root}", shellQuote(actx.Root),
		"{count}", strconv.Itoa(actx.Count),
	)
	return replacer.Replace(command)
}

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
