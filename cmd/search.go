package cmd

import (
	"context"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/catalog"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

var searchUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.search")

// NewSearchCmd creates the `pj search` command.
func NewSearchCmd(svc **service.Service) *cobra.Command {
	var searchJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find projects by name substring",
		Long: `Find projects whose name contains the query, case-insensitively.

Matching is against project names only; a group stays visible only while
at least one of its projects matches. The catalog itself is untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			c := s.Store.Catalog()
			matched := catalog.FilterGroups(c.Groups, args[0])

			if len(matched) == 0 {
				searchUlog.Info("No matches").
					Field("query", args[0]).
					Pretty("No matching projects.").
					PrettyOnly().
					Log(ctx)
				return nil
			}

			if searchJSON {
				return outputJSON(matched)
			}

			printGroupsTable(c, matched)
			return nil
		},
	}

	cmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")

	return cmd
}
