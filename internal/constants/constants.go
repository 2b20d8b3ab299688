// Package constants defines shared constants used throughout droidset.
package constants

import (
	"strings"
	"time"
)

// Application identity
const (
	AppName     = "droidset"
	EnvHome     = "DROIDSET_HOME"
	EnvDebug    = "DROIDSET_DEBUG"
	LabelSep    = " - " // Separator between namespace and key name in display labels
	DefaultType = "Int"
)

// Directory and file names
const (
	HomeDirName    = ".droidset"
	ConfigFileName = "config"
	LogFileName    = "log"
	DBFileName     = "settings.db"
)

// Provider kinds
const (
	ProviderADB   = "adb"
	ProviderLocal = "local"
)

// Android platform names
const (
	ADBBinary                 = "adb"
	ActionManageWriteSettings = "android.settings.action.MANAGE_WRITE_SETTINGS"
	OpWriteSettings           = "WRITE_SETTINGS"
	SettingsNull              = "null" // What `settings get` prints for an unset key
	DefaultPackage            = "com.android.shell"
)

// adb command timeouts
const (
	ADBCommandTimeout = 10 * time.Second
	ADBDeviceTimeout  = 5 * time.Second
)

// Notification texts
const (
	MsgFoundKeys       = "Found %d keys"
	MsgGivePermission  = "Give me permission!"
	MsgValueCopied     = "Copied value to clipboard"
	MsgValueNotEdited  = "Value cannot be edited in place; type a new value to replace it"
	ToastDuration      = 4 * time.Second
	ToastErrorDuration = 6 * time.Second
)

// Display limits
const (
	MaxVisibleKeys = 15
)

// IsNullValue reports whether output from `settings get` means "unset".
func IsNullValue(s string) bool {
	return strings.TrimSpace(s) == SettingsNull
}
