package cmd

import (
	"context"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/service"
)

var baseUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.base")

// NewBaseCmd creates the `pj base` command.
func NewBaseCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base [path]",
		Short: "Show or set the base folder",
		Long: `Show or set the base folder under which projects are cataloged.

The base folder contains one level of group folders, each containing
project folders. Changing it does not clear the current catalog; the old
data stays visible (stale) until the next scan.

Examples:
  pj base              # Show the current base folder
  pj base ~/code       # Set the base folder`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			if len(args) == 0 {
				c := s.Store.Catalog()
				if c.BaseFolder == "" {
					baseUlog.Info("No base folder configured").
						Pretty("No base folder configured. Set one with 'pj base <path>'.").
						PrettyOnly().
						Log(ctx)
					return nil
				}
				fmt.Println(c.BaseFolder)
				return nil
			}

			path, err := s.Store.SetBaseFolder(args[0])
			if err != nil {
				return err
			}

			baseUlog.Info("Base folder set").
				Field("path", path).
				Pretty(fmt.Sprintf("Base folder set to %s. Run 'pj scan' to populate the catalog.", path)).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	return cmd
}
