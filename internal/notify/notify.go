// Package notify delivers transient user messages outside the TUI.
package notify

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/gate"
	"github.com/dongho-jung/droidset/internal/logging"
)

// Writer prints messages as "droidset: <msg>" lines.
type Writer struct {
	w io.Writer
}

// NewWriter creates a notifier writing to w (usually stderr).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Notify writes msg.
func (n *Writer) Notify(msg string) {
	fmt.Fprintf(n.w, "%s: %s\n", constants.AppName, msg)
}

// Runner runs an external command.
type Runner func(name string, args ...string) error

func execRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Desktop shows desktop notifications (osascript on macOS, notify-send on
// Linux). Other platforms are a no-op.
type Desktop struct {
	goos string
	run  Runner
}

// NewDesktop creates a desktop notifier for the running platform.
func NewDesktop() *Desktop {
	return &Desktop{goos: runtime.GOOS, run: execRunner}
}

// Notify sends msg. Failures are logged, never returned.
func (d *Desktop) Notify(msg string) {
	name, args := d.command(msg)
	if name == "" {
		return
	}
	if err := d.run(name, args...); err != nil {
		logging.Debug("desktop notification failed: %v", err)
	}
}

func (d *Desktop) command(msg string) (string, []string) {
	switch d.goos {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title %q`, msg, constants.AppName)
		return "osascript", []string{"-e", script}
	case "linux":
		return "notify-send", []string{constants.AppName, msg}
	}
	return "", nil
}

// Multi fans a message out to every notifier.
func Multi(notifiers ...gate.Notifier) gate.Notifier {
	return gate.NotifierFunc(func(msg string) {
		for _, n := range notifiers {
			n.Notify(msg)
		}
	})
}
