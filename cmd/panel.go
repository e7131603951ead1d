package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/internal/tui/panel"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

// NewPanelCmd creates the `pj panel` command.
func NewPanelCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "panel",
		Short:   "Launch the interactive project panel",
		Aliases: []string{"tui"},
		Long: `Launch the interactive terminal panel for browsing the catalog.

Groups fold and unfold like a tree; enter opens the selected project in
a new editor window. Opening the panel applies the staleness policy: a
catalog older than the freshness window is re-scanned first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for TTY
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("panel mode requires an interactive terminal")
			}

			s := *svc

			model := panel.New(s)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run panel: %w", err)
			}
			return nil
		},
	}

	return cmd
}
