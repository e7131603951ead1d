package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"
)

func (m Model) View() string {
	if !m.loaded {
		return "Loading..."
	}

	if m.help.ShowAll {
		return m.help.View()
	}

	// Header
	var header string
	if m.catalog.BaseFolder == "" {
		header = theme.DefaultTheme.Info.Render("[No base folder configured — press 'b' to set one]")
	} else {
		header = theme.DefaultTheme.Header.Render("Projects") + " " +
			lipgloss.NewStyle().Faint(true).Render(m.catalog.BaseFolder)
	}

	var inputLine string
	switch {
	case m.mode == modeBaseInput:
		inputLine = "Base folder: " + m.baseInput.View()
	case m.filterInput.Focused() || m.filterInput.Value() != "":
		inputLine = m.filterInput.View()
	}

	status := m.statusMessage
	if status != "" {
		status = theme.DefaultTheme.Muted.Render(status)
	}

	footer := m.help.View()

	fullView := lipgloss.JoinVertical(lipgloss.Left,
		header,
		inputLine,
		m.renderTree(),
		status,
		footer,
	)

	// Add top margin to prevent border cutoff
	return "\n" + fullView
}

func (m Model) renderTree() string {
	if len(m.displayNodes) == 0 {
		if m.filterInput.Value() != "" {
			return theme.DefaultTheme.Muted.Render("No matching projects.")
		}
		return theme.DefaultTheme.Muted.Render("No projects cataloged. Press 'R' to scan.")
	}

	var b strings.Builder

	viewportHeight := m.getViewportHeight()
	start := m.scrollOffset
	end := m.scrollOffset + viewportHeight
	if end > len(m.displayNodes) {
		end = len(m.displayNodes)
	}

	filtering := m.filterInput.Value() != ""
	for i := start; i < end; i++ {
		node := m.displayNodes[i]
		cursor := "  "
		if i == m.cursor {
			cursor = theme.DefaultTheme.Highlight.Render("▶ ")
		}

		var line string
		if node.isGroup {
			foldIndicator := "▶ "
			if filtering || m.catalog.IsExpanded(node.groupName) {
				foldIndicator = "▼ "
			}
			line = fmt.Sprintf("%s%s%s (%d)", cursor, foldIndicator, node.groupName, node.childCount)
			if i == m.cursor {
				line = lipgloss.NewStyle().Bold(true).Render(line)
			}
		} else {
			marker := "▢ "
			if node.project.Color != "" {
				marker = lipgloss.NewStyle().Foreground(lipgloss.Color(node.project.Color)).Render("● ")
			}
			line = fmt.Sprintf("%s  %s%s", cursor, marker, node.project.Name)
			if i == m.cursor {
				line = theme.DefaultTheme.Selected.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(m.displayNodes) > viewportHeight {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(" (%d-%d of %d)", start+1, end, len(m.displayNodes))))
	}

	return b.String()
}
