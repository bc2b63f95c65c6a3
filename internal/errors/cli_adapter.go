package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger}
}

// ExitCodeFor returns 0 for nil and 1 for every failure. Callers cannot tell
// failure kinds apart by exit status.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// FormatError formats an error for display on stderr.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// HandleError reports err on w, logs it when appropriate and returns the
// exit code the process should terminate with.
func (a *CLIErrorAdapter) HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(w, a.FormatError(err))
	return a.ExitCodeFor(err)
}

// shouldLog reports whether err is logged in addition to the stderr line.
// Internal errors always are.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	return a.verbose || IsCategory(err, CategoryInternal)
}

func (a *CLIErrorAdapter) logError(err error) {
	attrs := []slog.Attr{slog.String("category", string(GetCategory(err)))}
	message := "Unclassified error"
	var de *DocError
	if stdErrors.As(err, &de) {
		message = de.Message
		for k, v := range de.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
	} else {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	a.logger.LogAttrs(context.Background(), slog.LevelError, message, attrs...)
}
