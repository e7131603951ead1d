package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-projects/pkg/catalog"
	"github.com/mattsolo1/grove-projects/pkg/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case catalogLoadedMsg:
		m.catalog = msg.catalog
		m.loaded = true
		if msg.warn != nil {
			m.statusMessage = fmt.Sprintf("Showing cached data: %v", msg.warn)
		}
		m.buildDisplayNodes()
		return m, nil

	case scanFinishedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Scan failed: %v", msg.err)
			return m, nil
		}
		m.statusMessage = "Catalog rescanned"
		return m, loadCatalogCmd(m.service, false)

	case groupRefreshedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Refresh failed: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Refreshed group %s", msg.group)
		return m, loadCatalogCmd(m.service, false)

	case groupToggledMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Toggle failed: %v", msg.err)
			return m, nil
		}
		return m, loadCatalogCmd(m.service, false)

	case sortAppliedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Sort failed: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Sorted by %s", msg.mode)
		return m, loadCatalogCmd(m.service, false)

	case baseFolderSetMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Set base folder failed: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Base folder set to %s", msg.path)
		return m, fullScanCmd(m.service)

	case projectOpenedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Open failed: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Opened %s/%s", msg.group, msg.project)
		return m, nil

	case exportFinishedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Exported to %s", msg.path)
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			m.help.Toggle()
			return m, nil
		}

		// Handle base-folder input mode
		if m.mode == modeBaseInput {
			switch {
			case key.Matches(msg, m.keys.Back): // Esc
				m.mode = modeNormal
				m.baseInput.Blur()
				return m, nil
			case key.Matches(msg, m.keys.Confirm): // Enter
				path := strings.TrimSpace(m.baseInput.Value())
				m.mode = modeNormal
				m.baseInput.Blur()
				if path == "" {
					// Canceling the prompt is a normal outcome.
					return m, nil
				}
				return m, setBaseCmd(m.service, path)
			default:
				m.baseInput, cmd = m.baseInput.Update(msg)
				return m, cmd
			}
		}

		// Handle filtering mode
		if m.filterInput.Focused() {
			switch {
			case key.Matches(msg, m.keys.Back): // Esc
				m.filterInput.Blur()
				m.filterInput.SetValue("")
				m.buildDisplayNodes()
				return m, nil
			case key.Matches(msg, m.keys.Confirm): // Enter
				m.filterInput.Blur()
				return m, nil
			default:
				m.filterInput, cmd = m.filterInput.Update(msg)
				m.buildDisplayNodes()
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.displayNodes)-1 {
				m.cursor++
				m.adjustScroll()
			}
		case key.Matches(msg, m.keys.PageUp):
			pageSize := m.getViewportHeight() / 2
			if pageSize < 1 {
				pageSize = 1
			}
			m.cursor -= pageSize
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.adjustScroll()
		case key.Matches(msg, m.keys.PageDown):
			pageSize := m.getViewportHeight() / 2
			if pageSize < 1 {
				pageSize = 1
			}
			m.cursor += pageSize
			if m.cursor >= len(m.displayNodes) {
				m.cursor = len(m.displayNodes) - 1
			}
			m.adjustScroll()
		case key.Matches(msg, m.keys.GoToTop):
			// Handle 'gg' - go to top when g is pressed twice
			if m.lastKey == "g" {
				m.cursor = 0
				m.adjustScroll()
				m.lastKey = ""
			} else {
				m.lastKey = "g"
			}
			return m, nil
		case key.Matches(msg, m.keys.GoToBottom):
			if len(m.displayNodes) > 0 {
				m.cursor = len(m.displayNodes) - 1
				m.adjustScroll()
			}
		case key.Matches(msg, m.keys.FoldPrefix):
			m.lastKey = "z"
			return m, nil
		case msg.String() == "a" && m.lastKey == "z":
			// za - toggle fold under cursor
			m.lastKey = ""
			if node := m.currentNode(); node != nil && node.isGroup {
				return m, toggleGroupCmd(m.service, node.groupName)
			}
		case msg.String() == "M" && m.lastKey == "z":
			// zM - close all folds
			m.lastKey = ""
			if m.catalog != nil {
				return m, foldAllCmd(m.service, m.catalog.GroupNames(), false)
			}
		case msg.String() == "R" && m.lastKey == "z":
			// zR - open all folds
			m.lastKey = ""
			if m.catalog != nil {
				return m, foldAllCmd(m.service, m.catalog.GroupNames(), true)
			}
		case key.Matches(msg, m.keys.Open):
			node := m.currentNode()
			if node == nil {
				return m, nil
			}
			if node.isGroup {
				return m, toggleGroupCmd(m.service, node.groupName)
			}
			return m, openProjectCmd(m.service, node.groupName, node.project.Name)
		case key.Matches(msg, m.keys.Toggle):
			if node := m.currentNode(); node != nil && node.isGroup {
				return m, toggleGroupCmd(m.service, node.groupName)
			}
		case key.Matches(msg, m.keys.Search):
			m.mode = modeSearch
			m.filterInput.Focus()
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			return m, sortCmd(m.service, m.nextSortMode())
		case key.Matches(msg, m.keys.Refresh):
			node := m.currentNode()
			if node == nil {
				return m, nil
			}
			return m, refreshGroupCmd(m.service, node.groupName)
		case key.Matches(msg, m.keys.Rescan):
			m.statusMessage = "Rescanning..."
			return m, fullScanCmd(m.service)
		case key.Matches(msg, m.keys.SetBase):
			m.mode = modeBaseInput
			if m.catalog != nil {
				m.baseInput.SetValue(m.catalog.BaseFolder)
			}
			m.baseInput.Focus()
			return m, nil
		case key.Matches(msg, m.keys.Export):
			return m, exportCmd(m.service)
		}

		if !key.Matches(msg, m.keys.GoToTop) && !key.Matches(msg, m.keys.FoldPrefix) {
			m.lastKey = ""
		}
	}

	return m, nil
}

// currentNode returns the node under the cursor, or nil.
func (m *Model) currentNode() *displayNode {
	if m.cursor < 0 || m.cursor >= len(m.displayNodes) {
		return nil
	}
	return m.displayNodes[m.cursor]
}

// nextSortMode cycles through the sort modes, starting after the one
// currently persisted.
func (m *Model) nextSortMode() models.SortMode {
	current := models.SortNameAsc
	if m.catalog != nil && m.catalog.SortMode != "" {
		current = m.catalog.SortMode
	}
	for i, mode := range models.ValidSortModes {
		if mode == current {
			return models.ValidSortModes[(i+1)%len(models.ValidSortModes)]
		}
	}
	return models.SortNameAsc
}

// buildDisplayNodes flattens the catalog into visible rows. While a
// search query is active every matched group is shown expanded; the
// persisted expand state is untouched.
func (m *Model) buildDisplayNodes() {
	m.displayNodes = nil
	if m.catalog == nil {
		return
	}

	query := m.filterInput.Value()
	groups := catalog.FilterGroups(m.catalog.Groups, query)
	filtering := query != ""

	for i := range groups {
		g := &groups[i]
		m.displayNodes = append(m.displayNodes, &displayNode{
			isGroup:    true,
			groupName:  g.Name,
			childCount: len(g.Projects),
		})
		if !filtering && !m.catalog.IsExpanded(g.Name) {
			continue
		}
		for j := range g.Projects {
			m.displayNodes = append(m.displayNodes, &displayNode{
				groupName: g.Name,
				project:   &g.Projects[j],
			})
		}
	}

	if m.cursor >= len(m.displayNodes) {
		m.cursor = len(m.displayNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
}

func (m *Model) getViewportHeight() int {
	// Header, spacing, filter line and footer eat into the height.
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) adjustScroll() {
	viewportHeight := m.getViewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+viewportHeight {
		m.scrollOffset = m.cursor - viewportHeight + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
