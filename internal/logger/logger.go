// Package logger provides verbose logging for the smart mirror client.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to trace searches, backend calls and commute
// recalculations. Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. The TUI redirects it so log lines do not
// corrupt the alternate screen.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func emit(always bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { emit(false, "[DEBUG] ", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { emit(false, "[INFO] ", format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { emit(false, "[WARN] ", format, args...) }

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) { emit(true, "[ERROR] ", format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Scoped tags every line with a component name.
type Scoped struct {
	component string
}

// For returns a logger that prefixes messages with "component: ".
func For(component string) Scoped {
	return Scoped{component: component}
}

// Debug logs at debug level.
func (s Scoped) Debug(format string, args ...any) {
	emit(false, "[DEBUG] "+s.component+": ", format, args...)
}

// Info logs at info level.
func (s Scoped) Info(format string, args ...any) {
	emit(false, "[INFO] "+s.component+": ", format, args...)
}

// Warn logs at warn level.
func (s Scoped) Warn(format string, args ...any) {
	emit(false, "[WARN] "+s.component+": ", format, args...)
}

// Error logs at error level regardless of verbose mode.
func (s Scoped) Error(format string, args ...any) {
	emit(true, "[ERROR] "+s.component+": ", format, args...)
}
