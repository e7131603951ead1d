package panel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-projects/pkg/models"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

type catalogLoadedMsg struct {
	catalog *models.Catalog
	warn    error // non-fatal: stale data shown, auto-scan failed
}

type groupRefreshedMsg struct {
	group string
	err   error
}

type groupToggledMsg struct {
	group    string
	expanded bool
	err      error
}

type scanFinishedMsg struct{ err error }

type sortAppliedMsg struct {
	mode models.SortMode
	err  error
}

type baseFolderSetMsg struct {
	path string
	err  error
}

type projectOpenedMsg struct {
	group   string
	project string
	err     error
}

type exportFinishedMsg struct {
	path string
	err  error
}

func loadCatalogCmd(svc *service.Service, autoScan bool) tea.Cmd {
	return func() tea.Msg {
		c, err := svc.Snapshot(autoScan)
		return catalogLoadedMsg{catalog: c, warn: err}
	}
}

func refreshGroupCmd(svc *service.Service, group string) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.RefreshGroup(group)
		return groupRefreshedMsg{group: group, err: err}
	}
}

func toggleGroupCmd(svc *service.Service, group string) tea.Cmd {
	return func() tea.Msg {
		expanded, err := svc.ToggleGroup(group)
		return groupToggledMsg{group: group, expanded: expanded, err: err}
	}
}

func foldAllCmd(svc *service.Service, groups []string, expanded bool) tea.Cmd {
	return func() tea.Msg {
		for _, g := range groups {
			if err := svc.Store.SetGroupExpanded(g, expanded); err != nil {
				return groupToggledMsg{group: g, expanded: expanded, err: err}
			}
		}
		return groupToggledMsg{expanded: expanded}
	}
}

func fullScanCmd(svc *service.Service) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Store.FullScan()
		return scanFinishedMsg{err: err}
	}
}

func sortCmd(svc *service.Service, mode models.SortMode) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Store.SetSortMode(mode)
		return sortAppliedMsg{mode: mode, err: err}
	}
}

func setBaseCmd(svc *service.Service, path string) tea.Cmd {
	return func() tea.Msg {
		abs, err := svc.Store.SetBaseFolder(path)
		return baseFolderSetMsg{path: abs, err: err}
	}
}

func openProjectCmd(svc *service.Service, group, project string) tea.Cmd {
	return func() tea.Msg {
		err := svc.Open(group, project)
		return projectOpenedMsg{group: group, project: project, err: err}
	}
}

func exportCmd(svc *service.Service) tea.Cmd {
	return func() tea.Msg {
		data, err := svc.Export()
		if err != nil {
			return exportFinishedMsg{err: err}
		}
		path := filepath.Join(svc.Config.DataDir, fmt.Sprintf("pj-export-%s.json", time.Now().Format("20060102-150405")))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return exportFinishedMsg{err: err}
		}
		return exportFinishedMsg{path: path}
	}
}
