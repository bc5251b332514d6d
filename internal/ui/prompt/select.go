// Package prompt provides interactive terminal prompts.
//
// Only the generate command's -i mode uses this package; everything else
// stays non-interactive so hookgen works in scripts and CI.
package prompt

import (
	"os"
	"path/filepath"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/hookgen/internal/ui/styles"
)

// SelectResult holds the outcome of a directory selection prompt.
type SelectResult struct {
	// Value is the absolute path of the chosen directory.
	Value     string
	Index     int
	Cancelled bool
}

// dirItem is one source-root candidate. The display label is the path
// relative to the search root so deep-scan results stay readable.
type dirItem struct {
	path  string
	label string
	index int
}

func (d dirItem) Title() string       { return d.label }
func (d dirItem) Description() string { return "" }
func (d dirItem) FilterValue() string { return d.label }

type dirPicker struct {
	list      list.Model
	done      bool
	cancelled bool
	choice    int
}

func (m dirPicker) Init() tea.Cmd {
	return nil
}

func (m dirPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(dirItem); ok {
				m.choice = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m dirPicker) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// Select prompts for one of the candidate directories. Candidates are
// absolute paths; they are shown relative to root. The prompt renders on
// stderr so stdout stays clean for data output.
func Select(prompt, root string, candidates []string) (SelectResult, error) {
	if len(candidates) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	items := make([]list.Item, len(candidates))
	for i, dir := range candidates {
		items[i] = dirItem{path: dir, label: displayPath(root, dir), index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)

	// Candidate lists are short (a few directories at most), so the list
	// is sized to fit and filtering stays off.
	height := len(candidates) + 4
	if height > 12 {
		height = 12
	}
	l := list.New(items, delegate, 60, height)
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	model := dirPicker{
		list:   l,
		choice: -1,
	}
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := final.(dirPicker)

	if m.cancelled || m.choice < 0 || m.choice >= len(candidates) {
		return SelectResult{Cancelled: true}, nil
	}

	return SelectResult{
		Value: candidates[m.choice],
		Index: m.choice,
	}, nil
}

// displayPath renders dir relative to root, falling back to the absolute
// path when dir lies outside root.
func displayPath(root, dir string) string {
	if root == "" {
		return dir
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return dir
	}
	return rel
}
