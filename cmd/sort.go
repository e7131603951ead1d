package cmd

import (
	"context"
	"fmt"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/models"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

var sortUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.sort")

// NewSortCmd creates the `pj sort` command.
func NewSortCmd(svc **service.Service) *cobra.Command {
	modes := make([]string, len(models.ValidSortModes))
	for i, m := range models.ValidSortModes {
		modes[i] = string(m)
	}

	cmd := &cobra.Command{
		Use:   "sort <mode>",
		Short: "Reorder the catalog and persist the ordering",
		Long: fmt.Sprintf(`Reorder the catalog and persist the result.

Modes: %s

name-asc/name-desc reorder projects within every group; group-asc/
group-desc reorder the groups themselves; color puts projects with a
color hint first, ties by name.`, strings.Join(modes, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: modes,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			mode := models.SortMode(args[0])
			if _, err := s.Store.SetSortMode(mode); err != nil {
				return err
			}

			sortUlog.Info("Catalog sorted").
				Field("mode", args[0]).
				Pretty(fmt.Sprintf("Catalog sorted by %s.", args[0])).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	return cmd
}

// NewFoldCmd creates the `pj fold` command.
func NewFoldCmd(svc **service.Service) *cobra.Command {
	var collapse bool

	cmd := &cobra.Command{
		Use:   "fold <group>",
		Short: "Expand or collapse a group in the panel",
		Long: `Persist a group's expand state as shown in the panel.

No validation is done against the catalog: folding a group that has
since been deleted from disk is recorded all the same.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			return s.Store.SetGroupExpanded(args[0], !collapse)
		},
	}

	cmd.Flags().BoolVar(&collapse, "collapse", false, "Collapse instead of expand")

	return cmd
}
