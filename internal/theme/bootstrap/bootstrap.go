// Package bootstrap is the built-in theme producing Bootstrap-styled pages:
// one page per exported symbol under api/ plus an index page.
package bootstrap

import (
	"context"
	"embed"
	"log/slog"
	"time"

	"github.com/google/safehtml/template"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/loader"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/theme"
)

// Name is the registry name of this theme.
const Name = "bootstrap"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New(Name).ParseFS(template.TrustedFSFromEmbed(templateFS), "templates/*.tmpl"))

func init() {
	if err := theme.Register(Name, New); err != nil {
		panic(err)
	}
}

// Theme renders packages with Bootstrap markup.
type Theme struct {
	opts     theme.Options
	packages *loader.PackageSet
	logger   *slog.Logger
}

// New creates a bootstrap theme instance.
func New(opts theme.Options) (theme.Theme, error) {
	if opts.OutDir == "" {
		return nil, derrors.ValidationFailed("out", "output directory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(logfields.Theme(Name))
	return &Theme{
		opts:     opts,
		packages: loader.NewPackageSet(opts.OnConflict, logger),
		logger:   logger,
	}, nil
}

// Name implements theme.Theme.
func (t *Theme) Name() string { return Name }

// LoadFromFile implements theme.Theme.
func (t *Theme) LoadFromFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	desc, err := t.packages.Load(path)
	if err != nil {
		return err
	}
	t.logger.Debug("Loaded API description",
		logfields.Path(path),
		logfields.Package(desc.Name),
		logfields.Count(len(desc.Exports)))
	return nil
}

// Render implements theme.Theme.
//
// Every page is built in memory first, so an unknown kind or a name
// collision fails before the output directory is touched. The directory is
// then removed, recreated and filled: symbol pages first, index last.
func (t *Theme) Render(ctx context.Context) ([]apimodel.RenderedPage, error) {
	start := time.Now()

	pages, err := t.buildPages(ctx)
	if err != nil {
		return nil, err
	}
	if err := resetDir(t.opts.OutDir); err != nil {
		return nil, err
	}
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writePage(t.opts.OutDir, p); err != nil {
			return nil, err
		}
		t.logger.Debug("Wrote page", logfields.Path(p.Path))
	}

	t.logger.Info("Rendered documentation",
		logfields.Output(t.opts.OutDir),
		logfields.Count(t.packages.Len()),
		logfields.Pages(len(pages)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return pages, nil
}
