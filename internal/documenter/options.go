package documenter

import (
	"log/slog"

	"git.home.luguber.info/inful/apidocs/internal/loader"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/theme"
)

// Options selects inputs, theme and output for a run.
type Options struct {
	// InputGlob selects description files; `**` matches across directories.
	InputGlob string
	// Theme is a registered theme name.
	Theme string
	// OutDir is cleared and refilled on every run.
	OutDir      string
	Layout      string
	OnConflict  loader.ConflictPolicy
	Fingerprint bool
	// VerifyLinks checks every internal link after writing.
	VerifyLinks bool
}

// Option configures a Documenter.
type Option func(*Documenter)

// WithRegistry resolves themes from r instead of the default registry.
func WithRegistry(r *theme.Registry) Option {
	return func(d *Documenter) {
		d.registry = r
	}
}

// WithLogger sets the logger used for run progress.
func WithLogger(l *slog.Logger) Option {
	return func(d *Documenter) {
		d.logger = l
	}
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(d *Documenter) {
		d.recorder = r
	}
}
