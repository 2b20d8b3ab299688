// Package adb provides an interface for talking to an Android device
// through the adb binary.
package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/logging"
)

// bufferPool reuses bytes.Buffer instances to reduce allocations in execRunner.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// ErrNotInstalled is returned when the adb binary is not on PATH.
var ErrNotInstalled = errors.New("adb not found in PATH")

// Client defines the interface for adb operations.
type Client interface {
	// Serial returns the device serial the client targets ("" = default device).
	Serial() string

	// Run runs an adb command and discards its output.
	Run(ctx context.Context, args ...string) error

	// RunWithOutput runs an adb command and returns its stdout as printed.
	RunWithOutput(ctx context.Context, args ...string) (string, error)

	// Shell runs a command in the device shell. Arguments are quoted for
	// the remote shell.
	Shell(ctx context.Context, args ...string) (string, error)

	// Devices lists attached devices.
	Devices(ctx context.Context) ([]Device, error)

	// Version returns the first line of `adb version`.
	Version(ctx context.Context) (string, error)
}

// Runner executes the adb binary with args and returns its stdout and
// stderr. Tests replace it to avoid a real device.
type Runner func(ctx context.Context, args []string) (stdout, stderr string, err error)

type adbClient struct {
	serial string
	run    Runner
}

// New creates a client for the device with the given serial. An empty
// serial targets the only attached device.
func New(serial string) Client {
	return &adbClient{serial: serial, run: execRunner}
}

// NewWithRunner creates a client that executes commands through run.
func NewWithRunner(serial string, run Runner) Client {
	return &adbClient{serial: serial, run: run}
}

// Available reports whether the adb binary can be found.
func Available() bool {
	_, err := exec.LookPath(constants.ADBBinary)
	return err == nil
}

func execRunner(ctx context.Context, args []string) (string, string, error) {
	path, err := exec.LookPath(constants.ADBBinary)
	if err != nil {
		return "", "", ErrNotInstalled
	}
	cmd := exec.CommandContext(ctx, path, args...)

	stdout := bufferPool.Get().(*bytes.Buffer)
	stderr := bufferPool.Get().(*bytes.Buffer)
	stdout.Reset()
	stderr.Reset()
	defer bufferPool.Put(stdout)
	defer bufferPool.Put(stderr)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (c *adbClient) Serial() string {
	return c.serial
}

func (c *adbClient) args(args []string) []string {
	if c.serial == "" {
		return args
	}
	return append([]string{"-s", c.serial}, args...)
}

func (c *adbClient) Run(ctx context.Context, args ...string) error {
	_, err := c.RunWithOutput(ctx, args...)
	return err
}

func (c *adbClient) RunWithOutput(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ADBCommandTimeout)
	defer cancel()

	full := c.args(args)
	logging.Trace("adb %s", strings.Join(full, " "))

	stdout, stderr, err := c.run(ctx, full)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("adb command timeout: %w", err)
		}
		if errors.Is(err, ErrNotInstalled) {
			return "", err
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}

	return stdout, nil
}

func (c *adbClient) Shell(ctx context.Context, args ...string) (string, error) {
	quoted := make([]string, 0, len(args)+1)
	quoted = append(quoted, "shell")
	for _, a := range args {
		quoted = append(quoted, ShellQuote(a))
	}
	out, err := c.RunWithOutput(ctx, quoted...)
	if err != nil {
		return "", err
	}
	// Older adb servers exit 0 even when the remote command fails.
	if msg, failed := remoteFailure(out); failed {
		return "", errors.New(msg)
	}
	return out, nil
}

func (c *adbClient) Version(ctx context.Context) (string, error) {
	out, err := c.RunWithOutput(ctx, "version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

// ShellQuote quotes s for the device shell. Plain words are left alone.
func ShellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:=+,@%", r)
}

// remoteFailure detects error output printed by device-side tools such as
// `settings` and `appops`.
func remoteFailure(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Error:"),
			strings.HasPrefix(line, "Security exception:"),
			strings.HasPrefix(line, "Exception occurred"),
			strings.Contains(line, "java.lang.") && strings.Contains(line, "Exception"):
			return line, true
		}
	}
	return "", false
}
