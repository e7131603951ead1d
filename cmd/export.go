package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/pkg/service"
)

var exportUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.export")

// NewExportCmd creates the `pj export` command.
func NewExportCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full catalog to a JSON file",
		Long: `Export the persisted catalog (base folder, groups, expand states,
scan timestamp) as JSON, suitable for 'pj import'. Without a file
argument the JSON is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			data, err := s.Export()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			exportUlog.Info("Catalog exported").
				Field("file", args[0]).
				Pretty(fmt.Sprintf("Catalog exported to %s.", args[0])).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	return cmd
}

// NewImportCmd creates the `pj import` command.
func NewImportCmd(svc **service.Service) *cobra.Command {
	var substituteBase string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the catalog with a previously exported one",
		Long: `Replace the entire persisted catalog with the contents of an export
file. Nothing is merged; the current catalog is overwritten.

If the export's base folder no longer exists on this machine, pass
--base to substitute a path before the import is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			snap, err := s.PrepareImport(data)
			if err != nil {
				return err
			}

			if substituteBase != "" {
				abs, err := absDir(substituteBase)
				if err != nil {
					return err
				}
				snap.BaseFolder = abs
			}

			if snap.BaseFolderMissing() {
				return fmt.Errorf("base folder %s does not exist on this machine; re-run with --base <path> to substitute one", snap.BaseFolder)
			}

			if err := s.CommitImport(snap); err != nil {
				return err
			}

			importUlog.Info("Catalog imported").
				Field("file", args[0]).
				Field("groups", fmt.Sprintf("%d", len(snap.Groups))).
				Pretty(fmt.Sprintf("Imported %d group(s) from %s.", len(snap.Groups), args[0])).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().StringVar(&substituteBase, "base", "", "Substitute base folder when the exported one is missing")

	return cmd
}

var importUlog = grovelogging.NewUnifiedLogger("grove-projects.cmd.import")

func absDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("not an existing directory: %s", abs)
	}
	return abs, nil
}
