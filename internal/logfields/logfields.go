package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPath       = "path"
	KeyPackage    = "package"
	KeyExport     = "export"
	KeyTheme      = "theme"
	KeyOutput     = "output"
	KeyPattern    = "pattern"
	KeyPages      = "pages"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Package(name string) slog.Attr   { return slog.String(KeyPackage, name) }
func Export(name string) slog.Attr    { return slog.String(KeyExport, name) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }
func Pattern(p string) slog.Attr      { return slog.String(KeyPattern, p) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
