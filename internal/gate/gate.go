// Package gate checks the write-settings permission on screen activation.
package gate

import (
	"context"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/logging"
)

// Checker queries and requests the write-settings permission.
type Checker interface {
	// CanWrite reports whether the permission is currently granted.
	CanWrite(ctx context.Context) (bool, error)

	// RequestGrant takes the user to the screen where the permission can
	// be granted. It does not wait for the user.
	RequestGrant(ctx context.Context) error
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) { f(msg) }

// Gate runs the permission check.
type Gate struct {
	checker  Checker
	notifier Notifier
}

// New creates a gate. A nil notifier discards messages.
func New(checker Checker, notifier Notifier) *Gate {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &Gate{checker: checker, notifier: notifier}
}

// EnsureGranted returns true when the permission is granted. Otherwise it
// requests the grant, notifies the user and returns false. A failing check
// counts as not granted.
func (g *Gate) EnsureGranted(ctx context.Context) bool {
	granted, err := g.checker.CanWrite(ctx)
	if err != nil {
		logging.Warn("permission check failed: %v", err)
		granted = false
	}
	if granted {
		logging.Debug("write settings permission granted")
		return true
	}

	logging.Info("write settings permission missing, requesting grant")
	if err := g.checker.RequestGrant(ctx); err != nil {
		logging.Warn("failed to open permission screen: %v", err)
	}
	g.notifier.Notify(constants.MsgGivePermission)
	return false
}
