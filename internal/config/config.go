// Package config loads the optional apidocs.yaml file and supplies defaults
// for everything the command line does not set.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/loader"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "apidocs.yaml"

// Config mirrors the YAML file.
type Config struct {
	Input       string        `yaml:"input"`
	Theme       string        `yaml:"theme"`
	Out         string        `yaml:"out"`
	Layout      string        `yaml:"layout"`
	OnConflict  string        `yaml:"on_conflict"`
	Fingerprint bool          `yaml:"fingerprint"`
	VerifyLinks bool          `yaml:"verify_links"`
	MetricsFile string        `yaml:"metrics_file"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls log verbosity and encoding.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads path, expands ${VAR} references from the environment, then
// normalizes and defaults the result. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, derrors.ConfigError("failed to read config file", err).WithContext("path", path)
	}

	expanded := expandBraced(string(data))

	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, derrors.ConfigError("failed to parse config file", err).WithContext("path", path)
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path does
// not exist. found reports whether a file was read.
func LoadOptional(path string) (cfg *Config, found bool, err error) {
	if path == "" {
		path = DefaultPath
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		return Default(), false, nil
	}
	cfg, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Theme == "" {
		cfg.Theme = "bootstrap"
	}
	if cfg.Out == "" {
		cfg.Out = "./docs"
	}
	if cfg.OnConflict == "" {
		cfg.OnConflict = string(loader.ConflictError)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}

// normalize case-folds enumerations and rejects values outside their sets.
// Empty values stay empty so defaults apply afterwards.
func normalize(cfg *Config) error {
	cfg.Theme = clean(cfg.Theme)

	if clean(cfg.OnConflict) != "" {
		policy, err := loader.ParseConflictPolicy(cfg.OnConflict)
		if err != nil {
			return err
		}
		cfg.OnConflict = string(policy)
	}
	if clean(string(cfg.Logging.Level)) != "" {
		level, err := ParseLogLevel(string(cfg.Logging.Level))
		if err != nil {
			return err
		}
		cfg.Logging.Level = level
	}
	if clean(string(cfg.Logging.Format)) != "" {
		format, err := ParseLogFormat(string(cfg.Logging.Format))
		if err != nil {
			return err
		}
		cfg.Logging.Format = format
	}
	return nil
}

var bracedVar = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandBraced replaces ${VAR} with its environment value (empty when
// unset). Bare $VAR is left as written.
func expandBraced(s string) string {
	return bracedVar.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(m[2 : len(m)-1])
	})
}
