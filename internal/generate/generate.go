// Package generate glues source-root resolution to template stamping.
//
// It is the library entry point behind the CLI: a host embedding hookgen
// (for example an editor extension) passes its workspace roots and gets
// back what was written, without touching the cobra layer.
package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/hookgen/internal/catalog"
	"github.com/raphi011/hookgen/internal/config"
	"github.com/raphi011/hookgen/internal/log"
	"github.com/raphi011/hookgen/internal/resolve"
	"github.com/raphi011/hookgen/internal/scaffold"
)

// ErrNoWorkspace indicates the caller provided no workspace roots.
// Checked before any filesystem traversal.
var ErrNoWorkspace = errors.New("no workspace open")

// Options controls a single generate run.
type Options struct {
	// Roots are the candidate workspace roots; the first entry is used.
	// Empty means no workspace is open and is an immediate error.
	Roots []string

	// Target overrides resolution with an already-chosen source root
	// (interactive selection). Empty means resolve from Roots[0].
	Target string

	// Scan is the resolution policy, config.ScanShallow or config.ScanDeep.
	// Empty means shallow.
	Scan string

	// Skip holds extra directory names excluded from the deep scan.
	Skip []string

	// Only restricts the stamp to the named hooks. Empty means the whole
	// catalog.
	Only []string

	// DryRun reports would-be writes without touching the filesystem.
	DryRun bool
}

// Result reports a completed (or dry) generate run.
type Result struct {
	// Root is the search root that was used.
	Root string
	// Target is the resolved source root the hooks were written under.
	Target string
	// Dir is the hooks output folder.
	Dir string
	// Written holds the full paths written, in write order. On partial
	// failure it holds the files written before the error.
	Written []string
	// DryRun mirrors Options.DryRun.
	DryRun bool
}

// Run resolves the source root and stamps the hook catalog beneath it.
//
// Failures pass through untouched for the command boundary to render:
// ErrNoWorkspace, resolve.ErrNotFound, catalog filter errors, and I/O
// errors from the writer. On a partial write failure the returned Result
// is non-nil and lists the files that made it to disk.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Target == "" && len(opts.Roots) == 0 {
		return nil, ErrNoWorkspace
	}

	entries := catalog.Entries()
	if len(opts.Only) > 0 {
		var err error
		entries, err = catalog.Filter(opts.Only)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Target: opts.Target, DryRun: opts.DryRun}
	if len(opts.Roots) > 0 {
		result.Root = opts.Roots[0]
	}

	if result.Target == "" {
		target, err := resolveTarget(ctx, result.Root, opts)
		if err != nil {
			return nil, err
		}
		result.Target = target
	}

	log.FromContext(ctx).Debug("stamping hooks",
		"target", result.Target, "entries", len(entries), "dry-run", opts.DryRun)

	written, err := scaffold.Writer{DryRun: opts.DryRun}.Write(result.Target, entries)
	if written != nil {
		result.Dir = written.Dir
		result.Written = written.Written
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

// Candidates returns every source-root candidate for the active policy,
// in precedence order. Used for interactive target selection; an empty
// slice means resolution would fail with resolve.ErrNotFound.
func Candidates(ctx context.Context, opts Options) ([]string, error) {
	if len(opts.Roots) == 0 {
		return nil, ErrNoWorkspace
	}
	root := opts.Roots[0]

	if opts.Scan == config.ScanDeep {
		return resolve.DeepCandidates(ctx, root, opts.Skip)
	}
	return resolve.ShallowCandidates(root), nil
}

func resolveTarget(ctx context.Context, root string, opts Options) (string, error) {
	l := log.FromContext(ctx)

	if opts.Scan == config.ScanDeep {
		l.Debug("resolving target", "root", root, "scan", config.ScanDeep)
		target, err := resolve.Deep(ctx, root, opts.Skip)
		if err != nil {
			return "", deepError(root, err)
		}
		return target, nil
	}

	l.Debug("resolving target", "root", root, "scan", config.ScanShallow)
	target, err := resolve.Shallow(root)
	if err != nil {
		return "", fmt.Errorf("%w under %s", err, root)
	}
	return target, nil
}

func deepError(root string, err error) error {
	if errors.Is(err, resolve.ErrNotFound) {
		return fmt.Errorf("%w under %s", err, root)
	}
	return err
}
