package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/gate"
	"github.com/dongho-jung/droidset/internal/notify"
)

func newGrantCmd(flags *globalFlags) *cobra.Command {
	var allow, deny, desktop bool

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Show or change the write-settings permission",
		Long: `Show the WRITE_SETTINGS mode of the configured package. When it is not
granted, the device's permission screen is opened.

--allow and --deny set the mode directly: on the local provider this
edits the store, over adb it runs "appops set" (needs a debuggable shell).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if allow && deny {
				return errors.New("--allow and --deny are mutually exclusive")
			}

			s, err := openSession(flags, "grant")
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			pkg := s.app.Config.Package

			if allow || deny {
				if err := s.backend.Grants.SetMode(ctx, allow); err != nil {
					return fmt.Errorf("failed to set %s for %s: %w", constants.OpWriteSettings, pkg, err)
				}
			}

			mode, err := s.backend.Grants.Mode(ctx)
			if err != nil {
				return fmt.Errorf("failed to read %s for %s: %w", constants.OpWriteSettings, pkg, err)
			}
			fmt.Fprintf(out, "%s: %s %s\n", pkg, constants.OpWriteSettings, mode)

			if allow || deny || mode == "allow" {
				return nil
			}

			var n gate.Notifier = notify.NewWriter(cmd.ErrOrStderr())
			if desktop {
				n = notify.Multi(n, notify.NewDesktop())
			}
			gate.New(s.backend.Checker, n).EnsureGranted(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&allow, "allow", false, "Grant WRITE_SETTINGS")
	cmd.Flags().BoolVar(&deny, "deny", false, "Revoke WRITE_SETTINGS")
	cmd.Flags().BoolVar(&desktop, "desktop", false, "Also show a desktop notification when the permission is missing")
	return cmd
}
