// Package main provides the entry point for the droidset CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/app"
	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/logging"
	"github.com/dongho-jung/droidset/internal/settings"
	"github.com/dongho-jung/droidset/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	provider string
	serial   string
	pkg      string
	db       string
	debug    bool
}

func (f *globalFlags) overrides() app.Overrides {
	return app.Overrides{
		Provider: f.provider,
		Serial:   f.serial,
		Package:  f.pkg,
		DB:       f.db,
		Debug:    f.debug,
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "droidset - browse and edit Android settings",
		Long: `droidset lists the known Global and System settings keys of an Android
device and reads or writes their values, either over adb or against a
local emulated settings store.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(cmd)
				return nil
			}
			return runMain(flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.provider, "provider", "", "Settings provider: adb or local")
	pf.StringVar(&flags.serial, "serial", "", "adb device serial")
	pf.StringVar(&flags.pkg, "package", "", "Package whose WRITE_SETTINGS permission is used")
	pf.StringVar(&flags.db, "db", "", "Database path for the local provider")
	pf.BoolVar(&flags.debug, "debug", false, "Write debug logs")

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information")

	rootCmd.AddCommand(
		newKeysCmd(flags),
		newGetCmd(flags),
		newPutCmd(flags),
		newGrantCmd(flags),
		newCheckCmd(flags),
		newHistoryCmd(),
		newConfigCmd(flags),
		newVersionCmd(),
	)
	return rootCmd
}

// session is an initialized app with logging and an open backend.
type session struct {
	app     *app.App
	backend *app.Backend
	logger  logging.Logger
}

func (s *session) Close() {
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			logging.Warn("failed to close backend: %v", err)
		}
	}
	_ = s.logger.Close()
}

// openSession prepares the home directory, logging, config and backend.
// Config warnings reach stderr; later warnings and errors only go to the
// log file, since commands report their own errors.
func openSession(flags *globalFlags, script string) (*session, error) {
	application, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}
	if err := application.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	logger, err := logging.New(application.GetLogPath(), application.Debug || flags.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	logger.SetScript(script)
	logging.SetGlobal(logger)

	if err := application.LoadConfig(flags.overrides()); err != nil {
		_ = logger.Close()
		return nil, err
	}
	logger.SetEcho(false)

	backend, err := application.OpenBackend()
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	logging.Debug("session: provider=%s package=%s", application.Config.Provider, application.Config.Package)
	return &session{app: application, backend: backend, logger: logger}, nil
}

// runMain starts the settings screen.
func runMain(flags *globalFlags) error {
	s, err := openSession(flags, constants.AppName)
	if err != nil {
		return err
	}
	defer s.Close()

	logging.Log("=== Settings screen start ===")
	defaultType, err := settings.ParseValueType(s.app.Config.DefaultType)
	if err != nil {
		logging.Warn("config: %v, using %s", err, settings.TypeInteger)
		defaultType = settings.TypeInteger
	}

	return tui.RunSettingsScreen(tui.ScreenOptions{
		Provider:    s.backend.Provider,
		Checker:     s.backend.Checker,
		Theme:       s.app.Config.Theme,
		DefaultType: defaultType,
		Backend:     s.backend.Name,
		History:     s.app.History(),
	})
}
