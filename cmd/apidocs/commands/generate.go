package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/apidocs/internal/documenter"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	RunFlags `embed:""`
}

func (g *GenerateCmd) Run(globals *Global, root *CLI) error {
	s, err := root.settings(&g.RunFlags)
	if err != nil {
		return err
	}
	r, err := newRunner(s, root.logger, globals.Stdout)
	if err != nil {
		return err
	}
	return r.run(globals.Ctx)
}

// runner owns one Documenter and its optional metrics textfile.
type runner struct {
	doc         *documenter.Documenter
	prom        *metrics.PrometheusRecorder
	metricsFile string
	logger      *slog.Logger
	stdout      io.Writer
	outDir      string
}

func newRunner(s Settings, logger *slog.Logger, stdout io.Writer) (*runner, error) {
	r := &runner{metricsFile: s.MetricsFile, logger: logger, stdout: stdout, outDir: s.Options.OutDir}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	if s.MetricsFile != "" {
		r.prom = metrics.NewPrometheusRecorder(nil)
		rec = r.prom
	}

	doc, err := documenter.New(s.Options, documenter.WithLogger(logger), documenter.WithRecorder(rec))
	if err != nil {
		return nil, err
	}
	r.doc = doc
	return r, nil
}

// run performs one pass and, when configured, rewrites the metrics file
// whatever the outcome.
func (r *runner) run(ctx context.Context) error {
	res, runErr := r.doc.Run(ctx)

	var writeErr error
	if r.prom != nil {
		writeErr = r.prom.WriteTextfile(r.metricsFile)
		if writeErr == nil {
			r.logger.Debug("Wrote metrics", logfields.Path(r.metricsFile))
		}
	}
	if runErr != nil {
		return errors.Join(runErr, writeErr)
	}
	if writeErr != nil {
		return writeErr
	}

	printf(r.stdout, "Generated %d pages from %d packages in %s\n", len(res.Pages), res.Packages, r.outDir)
	return nil
}
