package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

var (
	verbose   = false
	useColors = true
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
	debug               = newDebugLogger(stderr)
)

// ConfigureVerbosity configures how verbose log printing should be.
func ConfigureVerbosity(v bool) {
	verbose = v
}

// ConfigureColors toggles colorized output for Success and Error.
func ConfigureColors(enabled bool) {
	useColors = enabled
}

// SetOutput redirects regular and error output. Used by tests.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
	debug = newDebugLogger(errOut)
}

func newDebugLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Print logs a message to stdout, with optional format args.
func Print(message string, fmtArgs ...interface{}) {
	write(stdout, message, fmtArgs)
}

// Printv logs a message to stderr, with optional format args, if verbosity is enabled.
func Printv(message string, fmtArgs ...interface{}) {
	if verbose {
		debug.Debug(format(message, fmtArgs))
	}
}

// Debugv emits a structured verbose record with key/value attributes.
func Debugv(message string, attrs ...any) {
	if verbose {
		debug.Debug(message, attrs...)
	}
}

// Success logs a message to stdout in green, with optional format args.
func Success(message string, fmtArgs ...interface{}) {
	if useColors {
		color.New(color.FgGreen).Fprint(stdout, format(message, fmtArgs)+"\n")
		return
	}
	write(stdout, message, fmtArgs)
}

// Error logs a message to stderr, with optional format args.
func Error(message string, fmtArgs ...interface{}) {
	if useColors {
		color.New(color.FgRed).Fprint(stderr, format(message, fmtArgs)+"\n")
		return
	}
	write(stderr, message, fmtArgs)
}

func format(message string, fmtArgs []interface{}) string {
	if len(fmtArgs) > 0 {
		return fmt.Sprintf(message, fmtArgs...)
	}
	return message
}

func write(w io.Writer, message string, fmtArgs []interface{}) {
	w.Write([]byte(format(message, fmtArgs) + "\n"))
}
