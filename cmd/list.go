package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/models"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

var listUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.list")

// NewListCmd creates the `pj list` command.
func NewListCmd(svc **service.Service) *cobra.Command {
	var (
		listJSON   bool
		noAutoScan bool
	)

	cmd := &cobra.Command{
		Use:     "list [group]",
		Short:   "List cataloged groups and projects",
		Aliases: []string{"ls"},
		Long: `List the cataloged groups and their projects.

A catalog older than the freshness window (default 24h) is re-scanned
first, unless --no-scan is given. A failed re-scan falls back to the
cached catalog.

Examples:
  pj list              # List everything
  pj list Work         # List one group
  pj list --json       # Machine-readable output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			c, warn := s.Snapshot(!noAutoScan)
			if warn != nil {
				fmt.Fprintf(os.Stderr, "Warning: showing cached data, scan failed: %v\n", warn)
			}

			groups := c.Groups
			if len(args) == 1 {
				g := c.Group(args[0])
				if g == nil {
					return fmt.Errorf("group not in catalog: %s", args[0])
				}
				groups = []models.Group{*g}
			}

			if len(groups) == 0 {
				listUlog.Info("Catalog empty").
					Pretty("Catalog is empty. Set a base folder with 'pj base <path>' and run 'pj scan'.").
					PrettyOnly().
					Log(ctx)
				return nil
			}

			if listJSON {
				return outputJSON(groups)
			}

			printGroupsTable(c, groups)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noAutoScan, "no-scan", false, "Never trigger an automatic rescan, even if stale")

	return cmd
}

func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printGroupsTable(c *models.Catalog, groups []models.Group) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tPROJECT\tCOLOR")
	fmt.Fprintln(w, "-----\t-------\t-----")
	for _, g := range groups {
		if len(g.Projects) == 0 {
			fmt.Fprintf(w, "%s\t(empty)\t\n", g.Name)
			continue
		}
		for _, p := range g.Projects {
			fmt.Fprintf(w, "%s\t%s\t%s\n", g.Name, p.Name, p.Color)
		}
	}
	w.Flush()

	if !c.LastScanAt.IsZero() {
		fmt.Fprintf(os.Stdout, "\nLast scanned %s\n", c.LastScanAt.Format("2006-01-02 15:04:05"))
	}
}
