// Package logging provides unified logging functionality for droidset.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dongho-jung/droidset/internal/constants"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the short level tag written to the log file (L0..L5).
func (l Level) String() string {
	return fmt.Sprintf("L%d", int(l))
}

// Name returns the human readable level name.
func (l Level) Name() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger provides logging capabilities for droidset.
type Logger interface {
	// Trace outputs fine-grained information (only in debug mode)
	Trace(format string, args ...any)

	// Debug outputs debug information (only in debug mode)
	Debug(format string, args ...any)

	// Log writes to the log file with timestamp
	Log(format string, args ...any)

	// Info writes informational message to log file
	Info(format string, args ...any)

	// Warn writes a warning to the log file and echoes it to stderr
	Warn(format string, args ...any)

	// Error writes an error to the log file and echoes it to stderr
	Error(format string, args ...any)

	// Fatal writes a fatal error; it does not exit
	Fatal(format string, args ...any)

	// SetScript sets the current command name for context
	SetScript(script string)

	// SetKey sets the settings key currently being worked on; it is
	// appended to the context column ("droidset:WIFI_ON")
	SetKey(key string)

	// SetEcho controls whether warnings and errors are echoed to stderr.
	// The TUI turns this off while it owns the terminal.
	SetEcho(echo bool)

	// StartTimer starts timing a provider call
	StartTimer(operation string) *Timer

	// Close closes the log file
	Close() error
}

// Timer measures one provider call.
type Timer struct {
	operation string
	start     time.Time
	logger    *fileLogger
}

// StopWithResult logs how the operation ended and how long it took.
// Failures are logged at warning level without echoing to stderr.
func (t *Timer) StopWithResult(success bool, detail string) time.Duration {
	elapsed := time.Since(t.start)
	if t.logger == nil {
		return elapsed
	}
	status := "completed"
	level := LevelInfo
	if !success {
		status = "failed"
		level = LevelWarn
	}
	if detail != "" {
		t.logger.write(level, "%s %s in %v: %s", t.operation, status, elapsed, detail)
	} else {
		t.logger.write(level, "%s %s in %v", t.operation, status, elapsed)
	}
	return elapsed
}

type fileLogger struct {
	file   *os.File
	stderr io.Writer
	script string
	key    string
	debug  bool
	echo   bool
	mu     sync.Mutex
}

// New creates a new Logger that writes to the specified file.
func New(logPath string, debug bool) (Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &fileLogger{
		file:   file,
		stderr: os.Stderr,
		debug:  debug,
		echo:   true,
	}, nil
}

// newStderr creates the logger used before a log file is opened; it only
// echoes to stderr.
func newStderr(debug bool) Logger {
	return &fileLogger{
		stderr: os.Stderr,
		debug:  debug,
		echo:   true,
	}
}

func (l *fileLogger) SetScript(script string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.script = script
}

func (l *fileLogger) SetKey(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.key = key
}

func (l *fileLogger) SetEcho(echo bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = echo
}

// context returns "script" or "script:key". Caller holds the lock.
func (l *fileLogger) context() string {
	if l.key != "" {
		return l.script + ":" + l.key
	}
	return l.script
}

// getCaller returns the caller function name (skipping internal logging frames)
func getCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// write appends one entry to the log file.
// Format: [timestamp] [level] [context] [caller] message
func (l *fileLogger) write(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	caller := getCaller(3) // write, the public method, and its caller

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	timestamp := time.Now().Format("06-01-02 15:04:05.0")
	line := fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n", timestamp, level, l.context(), caller, msg)
	if _, err := l.file.WriteString(line); err != nil && l.echo {
		fmt.Fprintf(l.stderr, "Failed to write to log file: %v\n", err)
	}
}

func (l *fileLogger) echoLine(prefix, format string, args ...any) {
	l.mu.Lock()
	echo := l.echo
	l.mu.Unlock()
	if echo {
		fmt.Fprintf(l.stderr, prefix+format+"\n", args...)
	}
}

func (l *fileLogger) Trace(format string, args ...any) {
	if !l.debug {
		return
	}
	l.write(LevelTrace, format, args...)
}

func (l *fileLogger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	if l.file == nil {
		l.echoLine("[DEBUG] ", format, args...)
		return
	}
	l.write(LevelDebug, format, args...)
}

func (l *fileLogger) Log(format string, args ...any) {
	l.write(LevelInfo, format, args...)
}

func (l *fileLogger) Info(format string, args ...any) {
	l.write(LevelInfo, format, args...)
}

func (l *fileLogger) Warn(format string, args ...any) {
	l.echoLine("Warning: ", format, args...)
	l.write(LevelWarn, format, args...)
}

func (l *fileLogger) Error(format string, args ...any) {
	l.echoLine("Error: ", format, args...)
	l.write(LevelError, format, args...)
}

func (l *fileLogger) Fatal(format string, args ...any) {
	l.echoLine("Fatal: ", format, args...)
	l.write(LevelFatal, format, args...)
}

func (l *fileLogger) StartTimer(operation string) *Timer {
	if l.file != nil {
		l.write(LevelInfo, "%s started", operation)
	}
	return &Timer{
		operation: operation,
		start:     time.Now(),
		logger:    l,
	}
}

func (l *fileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Global logger instance
var globalLogger Logger = newStderr(os.Getenv(constants.EnvDebug) == "1")

// SetGlobal sets the global logger instance.
func SetGlobal(l Logger) {
	globalLogger = l
}

// Global returns the global logger instance.
func Global() Logger {
	return globalLogger
}

// Trace logs fine-grained information using the global logger.
func Trace(format string, args ...any) {
	globalLogger.Trace(format, args...)
}

// Debug logs debug information using the global logger.
func Debug(format string, args ...any) {
	globalLogger.Debug(format, args...)
}

// Log logs information using the global logger.
func Log(format string, args ...any) {
	globalLogger.Log(format, args...)
}

// Info logs informational message using the global logger.
func Info(format string, args ...any) {
	globalLogger.Info(format, args...)
}

// Warn logs a warning using the global logger.
func Warn(format string, args ...any) {
	globalLogger.Warn(format, args...)
}

// Error logs an error using the global logger.
func Error(format string, args ...any) {
	globalLogger.Error(format, args...)
}

// StartTimer starts a timer for measuring operation duration using the global logger.
func StartTimer(operation string) *Timer {
	return globalLogger.StartTimer(operation)
}
