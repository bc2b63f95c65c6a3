// Package errors provides the structured error type (DocError) used across
// apidocs for category-based classification and CLI presentation.
package errors

import (
	stdErrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory classifies a DocError for presentation and logging.
type ErrorCategory string

const (
	// User-facing configuration and input errors.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryLoad       ErrorCategory = "load"

	// Rendering errors.
	CategoryTheme      ErrorCategory = "theme"
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// Sentinels matched by errors.Is against a DocError of the same kind.
var (
	ErrLoad            = stdErrors.New("load error")
	ErrUnknownTheme    = stdErrors.New("unknown theme")
	ErrUnknownKind     = stdErrors.New("unknown kind")
	ErrPackageConflict = stdErrors.New("package conflict")
	ErrNameCollision   = stdErrors.New("name collision")
	ErrBrokenLink      = stdErrors.New("broken link")
)

// ContextFields carries structured context for DocError.
type ContextFields map[string]any

// DocError is a structured error with category, cause and context.
type DocError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`

	kind error
}

// Error implements the error interface. Context keys are emitted sorted.
func (e *DocError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Category))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap implements error unwrapping.
func (e *DocError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was built for.
func (e *DocError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// WithContext adds context information to the error.
func (e *DocError) WithContext(key string, value any) *DocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// withKind tags the error with a sentinel for errors.Is.
func (e *DocError) withKind(kind error) *DocError {
	e.kind = kind
	return e
}

// New creates a new DocError.
func New(category ErrorCategory, message string) *DocError {
	return &DocError{Category: category, Message: message}
}

// Wrap creates a new DocError that wraps an existing error.
func Wrap(err error, category ErrorCategory, message string) *DocError {
	return &DocError{Category: category, Message: message, Cause: err}
}

// IsCategory checks if an error (or anything it wraps) belongs to category.
func IsCategory(err error, category ErrorCategory) bool {
	var de *DocError
	if stdErrors.As(err, &de) {
		return de.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or CategoryInternal if
// err is not a DocError.
func GetCategory(err error) ErrorCategory {
	var de *DocError
	if stdErrors.As(err, &de) {
		return de.Category
	}
	return CategoryInternal
}
