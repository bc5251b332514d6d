// Package config loads hookgen configuration.
//
// Configuration is layered:
//
//   - Global: ~/.config/hookgen/config.toml, created by `hookgen config init`.
//     A missing file means defaults; an invalid file means defaults plus a
//     warning at startup.
//
//   - Local: .hookgen.toml at the search root, merged over the global
//     config for that run. Local scalar fields replace, skip names append,
//     and actions merge by name (enabled = false removes a global action).
//
// Only ambient behavior is configurable: the scan policy, the deep-scan
// skip list, and post-generate actions. The hook catalog, the hooks/
// output folder name, and the overwrite semantics are fixed on purpose.
package config
