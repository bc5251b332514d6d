package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookgen/internal/catalog"
	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/log"
	"github.com/raphi011/hookgen/internal/output"
)

// testContext returns a context with logger and printer writing to buffers.
func testContext(t *testing.T) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&stderr, false, false))
	ctx = output.WithPrinter(ctx, &stdout)
	return ctx, &stdout, &stderr
}

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, p), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
	}
}

func defaultCfg() *config.Config {
	c := config.Default()
	return &c
}

func TestRunGenerate(t *testing.T) {
	t.Run("stamps catalog and reports count", func(t *testing.T) {
		ctx, stdout, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src/app")

		if err := runGenerate(ctx, defaultCfg(), proj, generateOptions{noActions: true}); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}

		want := "wrote 7 hooks to " + filepath.Join(proj, "src", "app", "hooks")
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout = %q, want to contain %q", stdout.String(), want)
		}
		if _, err := os.Stat(filepath.Join(proj, "src", "app", "hooks", "useDebounce.ts")); err != nil {
			t.Errorf("useDebounce.ts not written: %v", err)
		}
	})

	t.Run("not found surfaces error and writes nothing", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		empty := t.TempDir()
		mkdirs(t, empty, "docs")

		err := runGenerate(ctx, defaultCfg(), empty, generateOptions{noActions: true})
		if err == nil {
			t.Fatal("runGenerate() expected error")
		}
		if !strings.Contains(err.Error(), "no src or app directory found") {
			t.Errorf("error = %q, want not-found message", err)
		}
		if _, statErr := os.Stat(filepath.Join(empty, "hooks")); !os.IsNotExist(statErr) {
			t.Error("hooks folder created despite resolution failure")
		}
	})

	t.Run("dry-run lists would-be writes only", func(t *testing.T) {
		ctx, stdout, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "app")

		if err := runGenerate(ctx, defaultCfg(), proj, generateOptions{dryRun: true, noActions: true}); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}

		if !strings.Contains(stdout.String(), "[dry-run] would write") {
			t.Errorf("stdout = %q, want dry-run lines", stdout.String())
		}
		if _, err := os.Stat(filepath.Join(proj, "app", "hooks")); !os.IsNotExist(err) {
			t.Error("dry-run created the hooks folder")
		}
	})

	t.Run("only typo fails with suggestion", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src")

		err := runGenerate(ctx, defaultCfg(), proj, generateOptions{only: []string{"useDebonce"}, noActions: true})
		if err == nil || !strings.Contains(err.Error(), "did you mean") {
			t.Errorf("error = %v, want did-you-mean suggestion", err)
		}
	})

	t.Run("invalid scan flag is rejected", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src")

		err := runGenerate(ctx, defaultCfg(), proj, generateOptions{scan: "recursive", noActions: true})
		if err == nil || !strings.Contains(err.Error(), "invalid scan") {
			t.Errorf("error = %v, want invalid scan", err)
		}
	})

	t.Run("dir flag overrides the search root", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src")
		elsewhere := t.TempDir()

		if err := runGenerate(ctx, defaultCfg(), elsewhere, generateOptions{dir: proj, noActions: true}); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(proj, "src", "hooks", "useApi.ts")); err != nil {
			t.Errorf("hook not written under --dir root: %v", err)
		}
	})

	t.Run("local config switches scan policy", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "packages/web/src")
		localConfig := filepath.Join(proj, config.LocalConfigFileName)
		if err := os.WriteFile(localConfig, []byte("scan = \"deep\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := runGenerate(ctx, defaultCfg(), proj, generateOptions{noActions: true}); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(proj, "packages", "web", "src", "hooks", "useFetch.ts")); err != nil {
			t.Errorf("deep scan from local config not honored: %v", err)
		}
	})

	t.Run("configured action runs after generate", func(t *testing.T) {
		ctx, _, stderr := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src")

		c := config.Default()
		c.Actions.Actions["marker"] = config.Action{
			Command: "touch action-ran.txt",
			On:      []string{"generate"},
		}

		if err := runGenerate(ctx, &c, proj, generateOptions{}); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(proj, "src", "action-ran.txt")); err != nil {
			t.Errorf("action did not run in the resolved root: %v", err)
		}
		if !strings.Contains(stderr.String(), "Running action 'marker'") {
			t.Errorf("stderr = %q, want action log line", stderr.String())
		}
	})

	t.Run("no-actions skips configured actions", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src")

		c := config.Default()
		c.Actions.Actions["marker"] = config.Action{
			Command: "touch action-ran.txt",
			On:      []string{"generate"},
		}

		if err := runGenerate(ctx, &c, proj, generateOptions{noActions: true}); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(proj, "src", "action-ran.txt")); !os.IsNotExist(err) {
			t.Error("action ran despite --no-actions")
		}
	})

	t.Run("unknown action name is an error", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		proj := t.TempDir()
		mkdirs(t, proj, "src")

		err := runGenerate(ctx, defaultCfg(), proj, generateOptions{action: "nope"})
		if err == nil || !strings.Contains(err.Error(), `unknown action "nope"`) {
			t.Errorf("error = %v, want unknown action", err)
		}
	})
}

// The context logger must pick up -v and -q after flag parsing, so the
// full root command is exercised here rather than runGenerate directly.
func TestRootCommandVerbosityFlags(t *testing.T) {
	origCfg, origWorkDir := cfg, workDir
	origVerbose, origQuiet := verbose, quiet
	defer func() {
		cfg, workDir = origCfg, origWorkDir
		verbose, quiet = origVerbose, origQuiet
	}()

	// The root command is shared; clear flag state left by a prior parse
	// so the verbose/quiet exclusion group starts clean.
	resetVerbosity := func(t *testing.T) {
		t.Helper()
		verbose, quiet = false, false
		for _, name := range []string{"verbose", "quiet"} {
			rootCmd.PersistentFlags().Lookup(name).Changed = false
		}
	}

	t.Run("verbose emits per-file writes", func(t *testing.T) {
		resetVerbosity(t)
		cfg = defaultCfg()
		proj := t.TempDir()
		mkdirs(t, proj, "src")
		workDir = proj

		ctx, stdout, stderr := testContext(t)
		rootCmd.SetArgs([]string{"-v", "--no-actions"})
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !strings.Contains(stdout.String(), "wrote 7 hooks") {
			t.Errorf("stdout = %q, want success line", stdout.String())
		}
		want := "wrote " + filepath.Join(proj, "src", "hooks", "useDebounce.ts")
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr = %q, want per-file line %q", stderr.String(), want)
		}
		if !strings.Contains(stderr.String(), "stamping hooks") {
			t.Errorf("stderr = %q, want debug diagnostics", stderr.String())
		}
	})

	t.Run("quiet suppresses logger warnings", func(t *testing.T) {
		resetVerbosity(t)
		cfg = defaultCfg()
		proj := t.TempDir()
		mkdirs(t, proj, "src")
		workDir = proj
		// A broken local config normally produces a stderr warning.
		if err := os.WriteFile(filepath.Join(proj, config.LocalConfigFileName), []byte("scan = [broken"), 0644); err != nil {
			t.Fatal(err)
		}

		ctx, stdout, stderr := testContext(t)
		rootCmd.SetArgs([]string{"-q", "--no-actions"})
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want nothing under --quiet", stderr.String())
		}
		if !strings.Contains(stdout.String(), "wrote 7 hooks") {
			t.Errorf("stdout = %q, data output should survive --quiet", stdout.String())
		}
	})
}

// Flag wiring: a fresh command with the generate flags parses the same
// surface the root command exposes.
func TestGenerateFlagParsing(t *testing.T) {
	proj := t.TempDir()
	mkdirs(t, proj, "src")

	origCfg, origWorkDir := cfg, workDir
	defer func() { cfg, workDir = origCfg, origWorkDir }()
	cfg = defaultCfg()
	workDir = proj

	cmd := &cobra.Command{Use: "hookgen", Args: cobra.NoArgs, SilenceUsage: true, SilenceErrors: true}
	addGenerateFlags(cmd)

	ctx, stdout, _ := testContext(t)
	cmd.SetArgs([]string{"--only", "useDebounce,useThrottle", "-n", "--no-actions"})
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "would write 2 hooks") {
		t.Errorf("stdout = %q, want 2-hook dry-run summary", stdout.String())
	}
	if len(catalog.Entries()) != 7 {
		t.Fatalf("catalog size changed; flag test assumptions invalid")
	}
}
