package resolve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/hookgen/internal/log"
)

// ErrNotFound indicates no conventional source root exists under the
// search root. Callers turn this into a user-facing message, not a stack.
var ErrNotFound = errors.New("no src or app directory found")

// markerNames are the folder names that mark a conventional source root.
// Matching is case-sensitive.
var markerNames = []string{"src", "app"}

// DefaultSkip lists directories the deep scan never enters or matches:
// dependency caches, version-control metadata, and build output.
var DefaultSkip = []string{
	"node_modules",
	"bower_components",
	"vendor",
	".git",
	".hg",
	".svn",
	"dist",
	"build",
	"out",
	"coverage",
	".next",
	".nuxt",
	".cache",
}

// Shallow locates the source root with a bounded three-check lookup:
//
//  1. root/src exists: return root/src/app if that also exists, else root/src
//  2. root/app exists: return root/app
//  3. ErrNotFound
//
// Nested src/app takes precedence over bare src, and the src family takes
// precedence over app. No recursion, so the lookup is O(1) in tree size.
func Shallow(root string) (string, error) {
	src := filepath.Join(root, "src")
	if isDir(src) {
		if nested := filepath.Join(src, "app"); isDir(nested) {
			return nested, nil
		}
		return src, nil
	}
	if app := filepath.Join(root, "app"); isDir(app) {
		return app, nil
	}
	return "", ErrNotFound
}

// ShallowCandidates returns every existing shallow candidate in precedence
// order (src/app, src, app). Used for interactive selection; the first
// entry is always what Shallow would have returned.
func ShallowCandidates(root string) []string {
	var candidates []string
	src := filepath.Join(root, "src")
	if isDir(src) {
		if nested := filepath.Join(src, "app"); isDir(nested) {
			candidates = append(candidates, nested)
		}
		candidates = append(candidates, src)
	}
	if app := filepath.Join(root, "app"); isDir(app) {
		candidates = append(candidates, app)
	}
	return candidates
}

// Deep locates the source root with a pre-order depth-first scan: the first
// directory named exactly "src" or "app" wins, with entries visited in
// os.ReadDir order. Deprecated in favor of Shallow; kept behind an explicit
// opt-in for projects with non-standard layouts.
//
// Symlinked directories are neither matched nor followed, and names on the
// skip list are neither matched nor entered, so the scan stays bounded even
// on cyclic or heavy trees. An unreadable subdirectory is skipped with a
// debug log; only an unreadable root is an error.
func Deep(ctx context.Context, root string, skip []string) (string, error) {
	skipSet := makeSkipSet(skip)

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", root, err)
	}
	if found := deepScan(ctx, root, entries, skipSet, nil); found != "" {
		return found, nil
	}
	return "", ErrNotFound
}

// DeepCandidates returns every match of the deep scan in visit order.
// Matched directories are not descended into, mirroring Deep's behavior
// of never searching beneath a match.
func DeepCandidates(ctx context.Context, root string, skip []string) ([]string, error) {
	skipSet := makeSkipSet(skip)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", root, err)
	}
	var candidates []string
	deepScan(ctx, root, entries, skipSet, func(path string) {
		candidates = append(candidates, path)
	})
	return candidates, nil
}

// deepScan walks entries pre-order. With collect == nil it returns the first
// match; otherwise it calls collect for every match and returns "".
func deepScan(ctx context.Context, dir string, entries []os.DirEntry, skip map[string]bool, collect func(string)) string {
	for _, entry := range entries {
		// entry.Type() does not follow symlinks: a symlinked directory
		// reports ModeSymlink, not ModeDir, so cycles terminate here.
		if !entry.IsDir() || entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		name := entry.Name()
		if skip[name] {
			continue
		}

		path := filepath.Join(dir, name)
		if isMarker(name) {
			if collect == nil {
				return path
			}
			collect(path)
			continue
		}

		sub, err := os.ReadDir(path)
		if err != nil {
			log.FromContext(ctx).Debug("skipping unreadable directory", "path", path, "error", err)
			continue
		}
		if found := deepScan(ctx, path, sub, skip, collect); found != "" {
			return found
		}
	}
	return ""
}

func isMarker(name string) bool {
	for _, m := range markerNames {
		if name == m {
			return true
		}
	}
	return false
}

// isDir reports whether path is a real directory. Lstat keeps symlinked
// markers out of the shallow lookup, matching the deep scan.
func isDir(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// makeSkipSet merges the default skip list with extra names, deduped.
func makeSkipSet(extra []string) map[string]bool {
	set := make(map[string]bool, len(DefaultSkip)+len(extra))
	for _, name := range DefaultSkip {
		set[name] = true
	}
	for _, name := range extra {
		set[name] = true
	}
	return set
}
