package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/apidocs/internal/config"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/version"
)

// Global carries process-wide state into command Run methods.
type Global struct {
	Ctx    context.Context
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (ignored when absent)" default:"apidocs.yaml" env:"APIDOCS_CONFIG"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log encoding: text or json" env:"APIDOCS_LOG_FORMAT"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Render documentation once (default command)"`
	Watch    WatchCmd    `cmd:"" help:"Render documentation and re-render whenever inputs change"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`

	stderr io.Writer
	logger *slog.Logger
}

// AfterApply runs after flag parsing; sets up flag-driven logging until the
// config file has been read.
func (c *CLI) AfterApply() error {
	format := config.LogFormatText
	if c.LogFormat != "" {
		f, err := config.ParseLogFormat(c.LogFormat)
		if err != nil {
			return err
		}
		format = f
	}
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	c.setLogger(level, format)
	return nil
}

func (c *CLI) setLogger(level config.LogLevel, format config.LogFormat) {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	var h slog.Handler
	if format == config.LogFormatJSON {
		h = slog.NewJSONHandler(c.stderr, opts)
	} else {
		h = slog.NewTextHandler(c.stderr, opts)
	}
	c.logger = slog.New(h)
	slog.SetDefault(c.logger)
}

// loadConfig reads the optional config file and re-derives logging from it.
// Flags keep priority over the file.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, found, err := config.LoadOptional(c.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if c.Verbose {
		level = config.LogLevelDebug
	}
	format := cfg.Logging.Format
	if c.LogFormat != "" {
		format, _ = config.ParseLogFormat(c.LogFormat)
	}
	c.setLogger(level, format)

	if found {
		c.logger.Debug("Loaded configuration", logfields.Path(c.Config))
	}
	return cfg, nil
}

// Execute parses args, runs the selected command and returns the process
// exit code: 0 on success, 1 on any failure.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	adapter := derrors.NewCLIErrorAdapter(false, nil)

	if _, err := config.LoadEnvFiles(); err != nil {
		return adapter.HandleError(stderr, err)
	}

	cli := &CLI{stderr: stderr}
	exitCode := -1
	parser, err := kong.New(cli,
		kong.Name("apidocs"),
		kong.Description("Render static HTML API documentation from *.api.json descriptions."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.String()},
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		return adapter.HandleError(stderr, derrors.InternalError("failed to build command line", err))
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help or --version already printed their output.
		return exitCode
	}
	if err != nil {
		return adapter.HandleError(stderr, err)
	}

	adapter = derrors.NewCLIErrorAdapter(cli.Verbose, cli.logger)
	runErr := kctx.Run(&Global{Ctx: ctx, Stdout: stdout}, cli)
	return adapter.HandleError(stderr, runErr)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
