package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/gate"
	"github.com/dongho-jung/droidset/internal/logging"
	"github.com/dongho-jung/droidset/internal/notify"
	"github.com/dongho-jung/droidset/internal/settings"
)

func newGetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <NAME | namespace/setting>",
		Short: "Print the value of a settings key",
		Long:  `Print the value of a settings key, or "null" when it is unset.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(settings.DefaultCatalog(), args[0])
			if err != nil {
				return err
			}

			s, err := openSession(flags, "get")
			if err != nil {
				return err
			}
			defer s.Close()
			logging.Global().SetKey(key.Name)

			value, ok := settings.NewAccessor(s.backend.Provider).Read(cmd.Context(), key)
			if !ok {
				value = constants.SettingsNull
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newPutCmd(flags *globalFlags) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "put <NAME | namespace/setting> <value>",
		Short: "Write the value of a settings key",
		Long: `Write the value of a settings key, coerced to --type. The write-settings
permission is checked first; when it is missing the permission screen is
opened and the write is still attempted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(settings.DefaultCatalog(), args[0])
			if err != nil {
				return err
			}

			s, err := openSession(flags, "put")
			if err != nil {
				return err
			}
			defer s.Close()
			logging.Global().SetKey(key.Name)

			name := typeName
			if name == "" {
				name = s.app.Config.DefaultType
			}
			typ, err := settings.ParseValueType(name)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := putValue(ctx, s.backend.Provider, s.backend.Checker,
				notify.NewWriter(cmd.ErrOrStderr()), key, typ, args[1]); err != nil {
				return err
			}
			if err := s.app.History().Record(key, typ, args[1]); err != nil {
				logging.Warn("history: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Value type: Int, String, Long or Float (default from config)")
	return cmd
}

// putValue runs the permission gate and then the write, like an activation
// of the settings screen followed by a commit.
func putValue(ctx context.Context, p settings.Provider, c gate.Checker, n gate.Notifier,
	key settings.Key, typ settings.ValueType, raw string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	gate.New(c, n).EnsureGranted(ctx)
	return settings.NewAccessor(p).Write(ctx, key, typ, raw)
}
