package commands

import (
	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/documenter"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/loader"
)

// RunFlags are shared by generate and watch. Unset values fall back to the
// config file, then to built-in defaults.
type RunFlags struct {
	Input       string `short:"i" help:"Glob selecting *.api.json inputs (supports **)" env:"APIDOCS_INPUT"`
	Theme       string `short:"t" help:"Theme name (default bootstrap)" env:"APIDOCS_THEME"`
	Out         string `short:"o" help:"Output directory, cleared on every run (default ./docs)" env:"APIDOCS_OUT"`
	Layout      string `short:"l" help:"Layout name written into each page's front matter" env:"APIDOCS_LAYOUT"`
	OnConflict  string `name:"on-conflict" help:"Duplicate package names: error or replace" env:"APIDOCS_ON_CONFLICT"`
	Fingerprint *bool  `negatable:"" help:"Add a content fingerprint to each page's front matter" env:"APIDOCS_FINGERPRINT"`
	VerifyLinks *bool  `name:"verify-links" negatable:"" help:"Fail when a generated link does not resolve" env:"APIDOCS_VERIFY_LINKS"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each run" env:"APIDOCS_METRICS_FILE"`
}

// Settings is the merged result of flags, environment and config file.
type Settings struct {
	Options     documenter.Options
	MetricsFile string
}

// resolve merges f over cfg.
func (f *RunFlags) resolve(cfg *config.Config) (Settings, error) {
	policy, err := loader.ParseConflictPolicy(pick(f.OnConflict, cfg.OnConflict))
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		Options: documenter.Options{
			InputGlob:   pick(f.Input, cfg.Input),
			Theme:       pick(f.Theme, cfg.Theme),
			OutDir:      pick(f.Out, cfg.Out),
			Layout:      pick(f.Layout, cfg.Layout),
			OnConflict:  policy,
			Fingerprint: pickBool(f.Fingerprint, cfg.Fingerprint),
			VerifyLinks: pickBool(f.VerifyLinks, cfg.VerifyLinks),
		},
		MetricsFile: pick(f.MetricsFile, cfg.MetricsFile),
	}
	if s.Options.InputGlob == "" {
		return Settings{}, derrors.ValidationFailed("input", "set --input, APIDOCS_INPUT or input in the config file")
	}
	return s, nil
}

func pick(flag, fromConfig string) string {
	if flag != "" {
		return flag
	}
	return fromConfig
}

func pickBool(flag *bool, fromConfig bool) bool {
	if flag != nil {
		return *flag
	}
	return fromConfig
}

// settings loads the config file and merges it with f.
func (c *CLI) settings(f *RunFlags) (Settings, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return Settings{}, err
	}
	return f.resolve(cfg)
}
