package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"romshelf/internal/config"
	"romshelf/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "romshelf",
		Short:         "Build a muOS game library from a curated catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newBuildCommand(&configFlag))
	rootCmd.AddCommand(newPlatformsCommand())
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

func loadConfig(configFlag *string) (*config.Config, error) {
	path := ""
	if configFlag != nil {
		path = *configFlag
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}
