// Package static provides non-interactive terminal output components.
package static

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// RenderTable creates a formatted table with proper column alignment.
// Column widths come from lipgloss/table; no borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}

// RenderKeyValues renders aligned "key: value" lines, keys bold.
// Used by config show for the effective settings listing.
func RenderKeyValues(pairs [][2]string) string {
	if len(pairs) == 0 {
		return ""
	}

	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}

	bold := lipgloss.NewStyle().Bold(true)
	var sb strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&sb, "%s%s %s\n", bold.Render(p[0]+":"), strings.Repeat(" ", width-len(p[0])), p[1])
	}
	return sb.String()
}
