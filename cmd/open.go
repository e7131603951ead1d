package cmd

import (
	"context"
	"fmt"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/service"
)

var openUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.open")

// NewOpenCmd creates the `pj open` command.
func NewOpenCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <group>/<project>",
		Short: "Open a project in a new editor window",
		Long: `Open a project in a new editor window using the configured
open_command (default: code --new-window). The editor is spawned
detached; pj does not wait for it.

Examples:
  pj open Work/api-server
  pj open Work api-server`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			group, project := args[0], ""
			if len(args) == 2 {
				project = args[1]
			} else {
				parts := strings.SplitN(args[0], "/", 2)
				if len(parts) != 2 {
					return fmt.Errorf("expected <group>/<project>, got %q", args[0])
				}
				group, project = parts[0], parts[1]
			}

			path := s.ProjectPath(group, project)
			if path == "" {
				// No base folder: opening is defined as a no-op.
				openUlog.Info("Open skipped, no base folder").
					Pretty("No base folder configured; nothing to open.").
					PrettyOnly().
					Log(ctx)
				return nil
			}

			if err := s.Open(group, project); err != nil {
				return err
			}

			openUlog.Info("Project opened").
				Field("group", group).
				Field("project", project).
				Field("path", path).
				Pretty(fmt.Sprintf("Opening %s", path)).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	return cmd
}
