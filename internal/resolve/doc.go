// Package resolve locates a project's conventional source root.
//
// React projects keep application code under a folder named "src" or "app",
// sometimes nested as "src/app". Generated files belong beneath that folder,
// so every hookgen command starts by resolving it.
//
// # Policies
//
// Two mutually exclusive policies are provided:
//
//   - Shallow (default): a bounded three-check lookup directly under the
//     search root. Nested src/app beats bare src, and the src family beats
//     app. Cannot loop and touches at most three paths.
//
//   - Deep (legacy, opt-in via --scan deep): a pre-order depth-first scan
//     where the first directory named src or app wins. Hardened with a
//     skip list for heavy directories and a no-follow rule for symlinks.
//
// Both policies return ErrNotFound when no candidate exists; that is an
// expected outcome, not a failure of the scan itself.
package resolve
