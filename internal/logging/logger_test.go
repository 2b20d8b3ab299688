package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newFileLogger opens a logger in a temp dir with echo off and returns it
// with a function reading back the log file.
func newFileLogger(t *testing.T, debug bool) (Logger, func() string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log")
	l, err := New(path, debug)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.SetEcho(false)
	t.Cleanup(func() { _ = l.Close() })

	return l, func() string {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading log: %v", err)
		}
		return string(data)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
		name  string
	}{
		{LevelTrace, "L0", "TRACE"},
		{LevelDebug, "L1", "DEBUG"},
		{LevelInfo, "L2", "INFO"},
		{LevelWarn, "L3", "WARN"},
		{LevelError, "L4", "ERROR"},
		{LevelFatal, "L5", "FATAL"},
		{Level(9), "L9", "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.tag {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.tag)
		}
		if got := tt.level.Name(); got != tt.name {
			t.Errorf("Level(%d).Name() = %q, want %q", int(tt.level), got, tt.name)
		}
	}
}

func TestContextColumn(t *testing.T) {
	l, read := newFileLogger(t, false)

	l.SetScript("droidset")
	l.Info("settings screen active: %d keys", 2)
	l.SetKey("WIFI_ON")
	l.Info("selected")
	l.SetKey("")
	l.Info("no selection")

	lines := strings.Split(strings.TrimSpace(read()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	wants := []string{
		"[L2] [droidset] [TestContextColumn] settings screen active: 2 keys",
		"[L2] [droidset:WIFI_ON] [TestContextColumn] selected",
		"[L2] [droidset] [TestContextColumn] no selection",
	}
	for i, want := range wants {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func TestDebugGating(t *testing.T) {
	tests := []struct {
		debug bool
		want  bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		l, read := newFileLogger(t, tt.debug)
		l.Debug("-> NewSettingsScreen(backend=%s)", "adb")
		l.Trace("dropping stale read for %s", "Global - WIFI_ON")

		content := read()
		for _, msg := range []string{"-> NewSettingsScreen(backend=adb)", "dropping stale read"} {
			if got := strings.Contains(content, msg); got != tt.want {
				t.Errorf("debug=%v: logged %q = %v, want %v", tt.debug, msg, got, tt.want)
			}
		}
	}
}

func TestTimerResult(t *testing.T) {
	l, read := newFileLogger(t, false)
	l.SetScript("put")

	l.StartTimer("put Global - WIFI_ON").StopWithResult(true, "Int 1")
	l.StartTimer("put System - FONT_SCALE").StopWithResult(false, "permission denied")
	l.StartTimer("put Global - ADB_ENABLED").StopWithResult(true, "")

	content := read()
	for _, want := range []string{
		"[L2] [put] [TestTimerResult] put Global - WIFI_ON started",
		"put Global - WIFI_ON completed in ",
		": Int 1\n",
		"[L3] [put] [TestTimerResult] put System - FONT_SCALE failed in ",
		": permission denied\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if _, elapsed, ok := strings.Cut(line, "ADB_ENABLED completed in "); ok && strings.Contains(elapsed, ":") {
			t.Errorf("empty detail added a separator: %q", line)
		}
	}
}

func TestTimerWithoutFile(t *testing.T) {
	var buf strings.Builder
	l := &fileLogger{stderr: &buf, echo: true}

	if d := l.StartTimer("put Global - WIFI_ON").StopWithResult(false, "offline"); d < 0 {
		t.Errorf("elapsed = %v", d)
	}
	if buf.Len() != 0 {
		t.Errorf("timer echoed %q to stderr", buf.String())
	}
}

func TestEcho(t *testing.T) {
	var buf strings.Builder
	l := &fileLogger{stderr: &buf, echo: true}

	l.Warn("config: unknown theme %q, using auto", "blue")
	l.SetEcho(false)
	l.Error("put global/wifi_on failed")

	out := buf.String()
	if out != "Warning: config: unknown theme \"blue\", using auto\n" {
		t.Errorf("echo output = %q", out)
	}
}

func TestLevelsWrittenToFile(t *testing.T) {
	l, read := newFileLogger(t, false)

	l.Warn("history: disk full")
	l.Error("failed to close backend")
	l.Fatal("unrecoverable")

	content := read()
	for _, want := range []string{"[L3]", "[L4]", "[L5]"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %s:\n%s", want, content)
		}
	}
}

func TestGlobalLogger(t *testing.T) {
	original := Global()
	defer SetGlobal(original)

	l, read := newFileLogger(t, false)
	SetGlobal(l)
	if Global() != l {
		t.Fatal("Global() did not return the set logger")
	}

	Info("=== Settings screen start ===")
	Warn("clipboard: no xclip")
	StartTimer("put Global - WIFI_ON").StopWithResult(true, "")

	content := read()
	for _, want := range []string{"=== Settings screen start ===", "clipboard: no xclip", "put Global - WIFI_ON completed"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestDefaultGlobalEchoesOnly(t *testing.T) {
	var buf strings.Builder
	l := newStderr(true).(*fileLogger)
	l.stderr = &buf

	l.Info("not written anywhere")
	l.Debug("early %s", "debug")

	if buf.String() != "[DEBUG] early debug\n" {
		t.Errorf("stderr = %q", buf.String())
	}
}

func TestNewInvalidPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "log"), false); err == nil {
		t.Error("New() with a missing directory succeeded")
	}
}

func TestCloseTwice(t *testing.T) {
	l, _ := newFileLogger(t, false)
	if err := l.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	l.Info("after close")
}
