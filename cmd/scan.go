package cmd

import (
	"context"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/service"
)

var scanUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.scan")

// NewScanCmd creates the `pj scan` command.
func NewScanCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Re-derive the whole catalog from disk",
		Long: `Scan the base folder and rebuild the catalog.

First-level directories become groups, second-level directories become
projects. The previous groups list is replaced wholesale and the scan
timestamp updated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			c, err := s.Store.FullScan()
			if err != nil {
				return err
			}

			projects := 0
			for _, g := range c.Groups {
				projects += len(g.Projects)
			}

			scanUlog.Info("Scan complete").
				Field("groups", fmt.Sprintf("%d", len(c.Groups))).
				Field("projects", fmt.Sprintf("%d", projects)).
				Pretty(fmt.Sprintf("Scanned %d group(s), %d project(s).", len(c.Groups), projects)).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	return cmd
}

// NewRefreshCmd creates the `pj refresh` command.
func NewRefreshCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh <group>",
		Short: "Re-scan a single group",
		Long: `Re-list one group's project folders without touching any other
group or the catalog's scan timestamp.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			projects, err := s.RefreshGroup(args[0])
			if err != nil {
				return err
			}

			scanUlog.Info("Group refreshed").
				Field("group", args[0]).
				Field("projects", fmt.Sprintf("%d", len(projects))).
				Pretty(fmt.Sprintf("Refreshed %s: %d project(s).", args[0], len(projects))).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	return cmd
}
