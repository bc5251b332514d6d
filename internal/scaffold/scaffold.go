// Package scaffold writes hook templates into a resolved source root.
//
// Writing is a stamp: every run writes the canonical template content,
// silently overwriting whatever is there. Re-running is the supported way
// to restore a hand-modified hook to its original state. There is no diff,
// no backup, and no prompt.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/hookgen/internal/catalog"
)

// OutputFolderName is the folder created beneath the resolved source root.
const OutputFolderName = "hooks"

// OutputDir returns the output folder for a resolved source root.
func OutputDir(target string) string {
	return filepath.Join(target, OutputFolderName)
}

// Writer stamps catalog entries to disk.
type Writer struct {
	// DryRun computes output paths without touching the filesystem.
	DryRun bool
}

// Result reports what a Write did (or, in dry-run, would have done).
type Result struct {
	// Dir is the output folder beneath the target.
	Dir string
	// Written holds the full path of every file written, in write order.
	// On partial failure it holds the files written before the error.
	Written []string
}

// Write stamps the given entries into target/hooks, creating the folder
// (and any missing parents) first. Entries are written in the given order;
// existing files of the same name are overwritten. Files under hooks/ with
// other names are left untouched.
//
// A mid-loop write failure returns the error together with a Result listing
// the files that were already written. Prior writes are not rolled back.
func (w Writer) Write(target string, entries []catalog.Entry) (*Result, error) {
	result := &Result{Dir: OutputDir(target)}

	if w.DryRun {
		for _, e := range entries {
			result.Written = append(result.Written, filepath.Join(result.Dir, e.File))
		}
		return result, nil
	}

	if err := os.MkdirAll(result.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create output folder %s: %w", result.Dir, err)
	}

	for _, e := range entries {
		path := filepath.Join(result.Dir, e.File)
		if err := os.WriteFile(path, []byte(e.Content), 0644); err != nil {
			return result, fmt.Errorf("write %s: %w", path, err)
		}
		result.Written = append(result.Written, path)
	}

	return result, nil
}
