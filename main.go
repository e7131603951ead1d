package main

import (
	"fmt"
	"os"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-projects/cmd"
	"github.com/mattsolo1/grove-projects/cmd/config"
	"github.com/mattsolo1/grove-projects/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := cli.NewStandardCommand(
		"pj",
		"A project catalog and launcher for grouped project folders",
	)
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)

		config.InitConfig()

		var err error
		svc, err = config.InitService(logger)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewBaseCmd(&svc))
	rootCmd.AddCommand(cmd.NewScanCmd(&svc))
	rootCmd.AddCommand(cmd.NewRefreshCmd(&svc))
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewOpenCmd(&svc))
	rootCmd.AddCommand(cmd.NewSortCmd(&svc))
	rootCmd.AddCommand(cmd.NewFoldCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewExportCmd(&svc))
	rootCmd.AddCommand(cmd.NewImportCmd(&svc))
	rootCmd.AddCommand(cmd.NewPanelCmd(&svc))
	rootCmd.AddCommand(cmd.NewResetCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
