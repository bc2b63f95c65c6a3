// Package documenter drives one documentation run: resolve inputs, load
// them into a theme, render, and optionally verify the result.
package documenter

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/linkverify"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/theme"

	// Built-in themes.
	_ "git.home.luguber.info/inful/apidocs/internal/theme/bootstrap"
)

// Result describes a successful run.
type Result struct {
	RunID    string
	Inputs   []string
	Packages int
	// Pages lists written paths relative to OutDir, in write order.
	Pages    []string
	Duration time.Duration
	Links    *linkverify.Report
}

// Documenter runs the pipeline. A Documenter may be reused for several runs
// but not concurrently.
type Documenter struct {
	opts     Options
	registry *theme.Registry
	logger   *slog.Logger
	recorder metrics.Recorder
}

// New validates opts. An unknown theme fails here, before any I/O.
func New(opts Options, options ...Option) (*Documenter, error) {
	d := &Documenter{
		opts:     opts,
		registry: theme.DefaultRegistry(),
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range options {
		opt(d)
	}

	if !d.registry.Has(opts.Theme) {
		return nil, derrors.UnknownThemeError(opts.Theme, d.registry.Names())
	}
	if opts.InputGlob == "" {
		return nil, derrors.ValidationFailed("input", "an input pattern is required")
	}
	if opts.OutDir == "" {
		return nil, derrors.ValidationFailed("out", "an output directory is required")
	}
	if !doublestar.ValidatePathPattern(opts.InputGlob) {
		return nil, derrors.ValidationFailed("input", "malformed pattern "+opts.InputGlob)
	}
	return d, nil
}

// Run performs one full pass. Every run starts from an empty theme, so
// repeated runs see only the current inputs.
func (d *Documenter) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	logger := d.logger.With(logfields.RunID(res.RunID))

	err := d.run(ctx, logger, res)
	res.Duration = time.Since(start)
	d.recorder.ObserveRunDuration(res.Duration)

	switch {
	case err == nil:
		d.recorder.IncRunOutcome(metrics.OutcomeSuccess)
		logger.Info("Documentation run complete",
			logfields.Count(len(res.Inputs)),
			logfields.Pages(len(res.Pages)),
			logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
		return res, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		d.recorder.IncRunOutcome(metrics.OutcomeCanceled)
		logger.Warn("Documentation run canceled", logfields.Error(err))
	default:
		d.recorder.IncRunOutcome(metrics.OutcomeFailed)
		logger.Debug("Documentation run failed", logfields.Error(err))
	}
	return res, err
}

func (d *Documenter) run(ctx context.Context, logger *slog.Logger, res *Result) error {
	inputs, err := d.resolveInputs()
	if err != nil {
		return err
	}
	res.Inputs = inputs
	logger.Debug("Resolved inputs", logfields.Pattern(d.opts.InputGlob), logfields.Count(len(inputs)))

	th, err := d.registry.New(d.opts.Theme, theme.Options{
		OutDir:      d.opts.OutDir,
		Layout:      d.opts.Layout,
		OnConflict:  d.opts.OnConflict,
		Fingerprint: d.opts.Fingerprint,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := th.LoadFromFile(ctx, path); err != nil {
			return err
		}
		res.Packages++
		d.recorder.IncPackagesLoaded()
	}

	pages, err := th.Render(ctx)
	if err != nil {
		return err
	}
	for _, p := range pages {
		res.Pages = append(res.Pages, p.Path)
		d.recorder.IncPagesWritten(th.Name())
	}

	if !d.opts.VerifyLinks {
		return nil
	}
	report, err := linkverify.Verify(d.opts.OutDir, pages)
	if err != nil {
		return err
	}
	res.Links = &report
	logger.Debug("Verified links", logfields.Pages(report.Pages), logfields.Count(report.Checked))
	return report.Err()
}

// resolveInputs expands the glob into a sorted list of files.
func (d *Documenter) resolveInputs() ([]string, error) {
	matches, err := doublestar.FilepathGlob(d.opts.InputGlob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, derrors.ValidationFailed("input", err.Error())
	}
	if len(matches) == 0 {
		return nil, derrors.NoInputsError(d.opts.InputGlob)
	}
	sort.Strings(matches)
	return matches, nil
}
