package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/app"
	"github.com/dongho-jung/droidset/internal/constants"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the configuration",
		Long: `Show the configuration in effect, after --provider, --serial, --package
and --db are applied. --save writes it to the config file, so

  droidset --provider local --package com.example.app config --save

makes those flags the new defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New()
			if err != nil {
				return fmt.Errorf("failed to create app: %w", err)
			}
			if err := application.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			if err := application.LoadConfig(flags.overrides()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if save {
				if err := application.SaveConfig(); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintf(out, "Saved %s/%s\n", application.HomeDir, constants.ConfigFileName)
			}

			cfg := application.Config
			fmt.Fprintf(out, "provider: %s\n", cfg.Provider)
			fmt.Fprintf(out, "serial: %s\n", cfg.Serial)
			fmt.Fprintf(out, "package: %s\n", cfg.Package)
			fmt.Fprintf(out, "db: %s\n", application.GetDBPath())
			fmt.Fprintf(out, "theme: %s\n", cfg.Theme)
			fmt.Fprintf(out, "default_type: %s\n", cfg.DefaultType)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the configuration to the config file")
	return cmd
}
