package panel

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattsolo1/grove-core/tui/components/help"

	"github.com/mattsolo1/grove-projects/pkg/models"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeBaseInput
)

// displayNode represents a single line in the panel view.
type displayNode struct {
	isGroup   bool
	groupName string
	project   *models.Project

	childCount int // For groups: number of projects
}

// Model is the main model for the project panel TUI
type Model struct {
	service      *service.Service
	catalog      *models.Catalog
	displayNodes []*displayNode
	cursor       int
	scrollOffset int
	keys         KeyMap
	help         help.Model
	width        int
	height       int

	mode        inputMode
	filterInput textinput.Model
	baseInput   textinput.Model

	statusMessage string
	lastKey       string // For detecting 'gg' and 'z' sequences
	loaded        bool
}

// New creates a new panel model.
func New(svc *service.Service) Model {
	helpModel := help.NewBuilder().
		WithKeys(keys).
		WithTitle("Project Panel - Help").
		Build()

	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.CharLimit = 100

	bi := textinput.New()
	bi.Placeholder = "Absolute path to base folder..."
	bi.CharLimit = 400
	bi.Width = 60

	return Model{
		service:     svc,
		keys:        keys,
		help:        helpModel,
		filterInput: ti,
		baseInput:   bi,
	}
}

// Init initializes the TUI. The first load applies the staleness policy,
// so an out-of-date catalog is re-scanned before it is shown.
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.service, true)
}
