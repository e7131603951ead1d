package cmd

import (
	"context"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/service"
)

var resetUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.reset")

// NewResetCmd creates the `pj reset` command.
func NewResetCmd(svc **service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop the catalog back to the empty default",
		Long: `Destroy the persisted catalog: base folder, groups, expand states
and scan timestamp. Requires --force; there is no undo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			if !force {
				return fmt.Errorf("refusing to reset without --force")
			}

			if err := s.Store.Reset(); err != nil {
				return err
			}

			resetUlog.Info("Catalog reset").
				Pretty("Catalog reset to empty.").
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Actually perform the reset")

	return cmd
}
