package panel

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mattsolo1/grove-core/tui/keymap"
)

// KeyMap defines the keybindings for the panel TUI
type KeyMap struct {
	keymap.Base
	Open       key.Binding
	Toggle     key.Binding
	Search     key.Binding
	Sort       key.Binding
	Refresh    key.Binding
	Rescan     key.Binding
	SetBase    key.Binding
	Export     key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	GoToTop    key.Binding
	GoToBottom key.Binding
	FoldPrefix key.Binding // z key for fold commands
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	baseHelp := k.Base.FullHelp()
	return append(baseHelp, []key.Binding{
		k.Open,
		k.Toggle,
		k.Search,
		k.Sort,
		k.Refresh,
		k.Rescan,
	}, []key.Binding{
		k.SetBase,
		k.Export,
		k.PageUp,
		k.PageDown,
		k.GoToTop,
		k.GoToBottom,
		k.FoldPrefix,
	})
}

var keys = KeyMap{
	Base: keymap.NewBase(),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open project / toggle group"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle group"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search projects"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort mode"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh group"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "full rescan"),
	),
	SetBase: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "set base folder"),
	),
	Export: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "export catalog"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "page down"),
	),
	GoToTop: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("gg", "go to top"),
	),
	GoToBottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "go to bottom"),
	),
	FoldPrefix: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "fold commands (za/zM/zR)"),
	),
}
