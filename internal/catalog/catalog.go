// Package catalog holds the embedded hook templates stamped into a project.
//
// The templates are compiled into the binary via //go:embed, so there is a
// single canonical copy of each hook regardless of which command emits it.
// The catalog is fixed at build time and not user-configurable.
package catalog

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

//go:embed templates/*.ts
var templates embed.FS

// Entry is one hook in the catalog.
type Entry struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description"`
	Content     string `json:"-"`
}

var descriptions = map[string]string{
	"useApi":            "Wrap an async API call with loading and error state",
	"useDebounce":       "Debounce a changing value",
	"useFetch":          "Fetch a URL with abort-on-unmount",
	"useInfiniteScroll": "Load more items when a sentinel scrolls into view",
	"useLocalStorage":   "useState persisted to localStorage",
	"usePagination":     "Clamped page state over a collection",
	"useThrottle":       "Throttle a changing value",
}

var loadOnce = sync.OnceValue(func() []Entry {
	files, err := templates.ReadDir("templates")
	if err != nil {
		panic(fmt.Sprintf("catalog: read embedded templates: %v", err))
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		content, err := templates.ReadFile("templates/" + f.Name())
		if err != nil {
			panic(fmt.Sprintf("catalog: read embedded template %s: %v", f.Name(), err))
		}
		name := strings.TrimSuffix(f.Name(), ".ts")
		entries = append(entries, Entry{
			Name:        name,
			File:        f.Name(),
			Description: descriptions[name],
			Content:     string(content),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
})

// Entries returns all catalog entries sorted by name.
func Entries() []Entry {
	loaded := loadOnce()
	out := make([]Entry, len(loaded))
	copy(out, loaded)
	return out
}

// Names returns all hook names sorted alphabetically.
func Names() []string {
	loaded := loadOnce()
	names := make([]string, len(loaded))
	for i, e := range loaded {
		names[i] = e.Name
	}
	return names
}

// Table returns the catalog as a name-to-content mapping.
func Table() map[string]string {
	loaded := loadOnce()
	table := make(map[string]string, len(loaded))
	for _, e := range loaded {
		table[e.Name] = e.Content
	}
	return table
}

// Lookup returns the entry for the given hook name.
func Lookup(name string) (Entry, bool) {
	for _, e := range loadOnce() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Filter returns the entries matching the given names, in catalog order.
// An unknown name is an error, with near-miss suggestions when available.
func Filter(names []string) ([]Entry, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			if suggestions := Suggest(name); len(suggestions) > 0 {
				return nil, fmt.Errorf("unknown hook %q (did you mean %s?)", name, strings.Join(suggestions, ", "))
			}
			return nil, fmt.Errorf("unknown hook %q (run 'hookgen list' to see the catalog)", name)
		}
		want[name] = true
	}

	var filtered []Entry
	for _, e := range loadOnce() {
		if want[e.Name] {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Suggest returns up to three hook names fuzzy-matching the given input.
// Used to build "did you mean" hints for typos in --only.
func Suggest(input string) []string {
	matches := fuzzy.Find(input, Names())
	var suggestions []string
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}
