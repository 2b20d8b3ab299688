// Package app provides the main application context and dependency injection.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dongho-jung/droidset/internal/adb"
	"github.com/dongho-jung/droidset/internal/config"
	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/gate"
	"github.com/dongho-jung/droidset/internal/history"
	"github.com/dongho-jung/droidset/internal/logging"
	"github.com/dongho-jung/droidset/internal/settings"
	"github.com/dongho-jung/droidset/internal/store"
)

// App represents the main application context with all dependencies.
type App struct {
	// Paths
	HomeDir string // ~/.droidset or $DROIDSET_HOME

	// State
	Config *config.Config

	// Runtime
	Debug bool // Debug mode enabled
}

// Overrides holds command-line values that take precedence over the
// config file. Empty fields leave the config value alone.
type Overrides struct {
	Provider string
	Serial   string
	Package  string
	DB       string
	Debug    bool
}

// New creates a new App rooted at the droidset home directory.
func New() (*App, error) {
	home, err := resolveHome()
	if err != nil {
		return nil, err
	}
	return NewWithHome(home), nil
}

// NewWithHome creates an App rooted at homeDir.
func NewWithHome(homeDir string) *App {
	return &App{
		HomeDir: homeDir,
		Debug:   os.Getenv(constants.EnvDebug) == "1",
	}
}

func resolveHome() (string, error) {
	if dir := os.Getenv(constants.EnvHome); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", constants.EnvHome, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(userHome, constants.HomeDirName), nil
}

// Initialize creates the home directory.
func (a *App) Initialize() error {
	if err := os.MkdirAll(a.HomeDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", a.HomeDir, err)
	}
	return nil
}

// LoadConfig loads the configuration and applies overrides.
func (a *App) LoadConfig(o Overrides) error {
	cfg, err := config.Load(a.HomeDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if o.Provider != "" {
		cfg.Provider = config.Provider(o.Provider)
	}
	if o.Serial != "" {
		cfg.Serial = o.Serial
	}
	if o.Package != "" {
		cfg.Package = o.Package
	}
	if o.DB != "" {
		cfg.DB = o.DB
	}
	if o.Debug {
		a.Debug = true
	}

	for _, warning := range cfg.Normalize() {
		logging.Warn("config: %s", warning)
	}
	a.Config = cfg
	return nil
}

// HasConfig checks if a configuration file exists.
func (a *App) HasConfig() bool {
	return config.Exists(a.HomeDir)
}

// GetLogPath returns the path to the log file.
func (a *App) GetLogPath() string {
	return filepath.Join(a.HomeDir, constants.LogFileName)
}

// GetDBPath returns the path of the local provider database.
func (a *App) GetDBPath() string {
	return a.config().DBPath(a.HomeDir)
}

// SaveConfig writes the current configuration to the home directory.
func (a *App) SaveConfig() error {
	return a.config().Save(a.HomeDir)
}

// History returns the store of previously written values.
func (a *App) History() *history.Service {
	return history.New(a.HomeDir)
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		a.Config = config.DefaultConfig()
	}
	return a.Config
}

// Grants reads and sets the write-settings app-op directly.
type Grants interface {
	Mode(ctx context.Context) (string, error)
	SetMode(ctx context.Context, allow bool) error
}

// Backend is the settings provider and permission checker selected by the
// configuration.
type Backend struct {
	Provider settings.Provider
	Checker  gate.Checker
	Grants   Grants
	Name     string // Short description for status lines

	// Exactly one of these is set.
	ADB   adb.Client
	Local *store.Store

	closer func() error
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b.closer != nil {
		return b.closer()
	}
	return nil
}

// OpenBackend builds the backend for the configured provider.
func (a *App) OpenBackend() (*Backend, error) {
	cfg := a.config()

	switch cfg.Provider {
	case config.ProviderLocal:
		path := a.GetDBPath()
		st, err := store.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open local settings store: %w", err)
		}
		view := st.App(cfg.Package)
		logging.Debug("backend: local store %s as %s", path, cfg.Package)
		return &Backend{
			Provider: view,
			Checker:  view,
			Grants:   view,
			Name:     "local " + path,
			Local:    st,
			closer:   st.Close,
		}, nil

	case config.ProviderADB:
		client := adb.New(cfg.Serial)
		name := "adb"
		if cfg.Serial != "" {
			name += " " + cfg.Serial
		}
		logging.Debug("backend: %s as %s", name, cfg.Package)
		checker := adb.NewPermissionChecker(client, cfg.Package)
		return &Backend{
			Provider: adb.NewSettingsProvider(client),
			Checker:  checker,
			Grants:   checker,
			Name:     name,
			ADB:      client,
		}, nil
	}

	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}
