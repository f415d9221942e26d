package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/notes-backend/internal/app"
	"github.com/heartmarshall/notes-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "notesctl",
		Short:         "Operator tool for the notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTokenCmd(),
		newMigrateCmd(),
		newDynamoCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the same configuration the server uses.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(app.BuildVersion())
		},
	}
}
