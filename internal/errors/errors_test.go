package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, "configuration invalid"),
			expected: "config: configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, "failed to load config"),
			expected: "config: failed to load config: file not found",
		},
		{
			name:     "context keys are sorted",
			err:      New(CategoryRender, "unknown kind").WithContext("kind", "enum").WithContext("export", "Color"),
			expected: "render: unknown kind (export=Color, kind=enum)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := fmt.Errorf("run: %w", LoadError("a.api.json", cause))

	assert.True(t, stdErrors.Is(err, ErrLoad))
	assert.True(t, stdErrors.Is(err, cause))
	assert.False(t, stdErrors.Is(err, ErrUnknownKind))
	assert.True(t, IsCategory(err, CategoryLoad))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocError
		sentinel error
		category ErrorCategory
	}{
		{"unknown theme", UnknownThemeError("material", []string{"bootstrap"}), ErrUnknownTheme, CategoryTheme},
		{"unknown kind", UnknownKindError("foo", "Color", "enum"), ErrUnknownKind, CategoryRender},
		{"package conflict", PackageConflictError("foo", "a.json", "b.json"), ErrPackageConflict, CategoryLoad},
		{"name collision", NameCollisionError("api/x.html", "a:X", "b:X"), ErrNameCollision, CategoryRender},
		{"broken link", BrokenLinkError("index.html", "api/x.html"), ErrBrokenLink, CategoryValidation},
		{"no inputs", NoInputsError("*.api.json"), ErrLoad, CategoryLoad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.category, GetCategory(tt.err))
		})
	}
}

func TestGetCategory_NonDocError(t *testing.T) {
	assert.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestCLIErrorAdapter(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, 0, adapter.ExitCodeFor(nil))
	assert.Equal(t, 1, adapter.ExitCodeFor(fmt.Errorf("boom")))
	assert.Equal(t, 1, adapter.ExitCodeFor(UnknownThemeError("x", nil)))

	var buf bytes.Buffer
	code := adapter.HandleError(&buf, UnknownKindError("foo", "Color", "enum"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: render: unknown kind (export=Color, kind=enum, package=foo)\n", buf.String())

	buf.Reset()
	assert.Equal(t, 0, adapter.HandleError(&buf, nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, "Error: boom", adapter.FormatError(fmt.Errorf("boom")))
}

func TestCLIErrorAdapter_LogsInternalErrorsWithoutVerbose(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(false, logger)

	var out bytes.Buffer
	adapter.HandleError(&out, UnknownKindError("foo", "Color", "enum"))
	assert.Empty(t, logs.String())

	adapter.HandleError(&out, InternalError("failed to build command line", fmt.Errorf("bad tag")))
	assert.Contains(t, logs.String(), "failed to build command line")
	assert.Contains(t, logs.String(), "category=internal")

	logs.Reset()
	NewCLIErrorAdapter(true, logger).HandleError(&out, fmt.Errorf("boom"))
	assert.Contains(t, logs.String(), "Unclassified error")
	assert.Contains(t, logs.String(), "category=internal")
	assert.Contains(t, logs.String(), "error=boom")
}
