package config

import (
	"errors"
	"io/fs"
	"os"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

const exampleConfig = `# apidocs configuration. Command-line flags and APIDOCS_* environment
# variables override these values. ${VAR} references are expanded.
input: "api/**/*.api.json"
theme: bootstrap
out: ./docs
layout: default
# error rejects two inputs describing the same package; replace keeps the last.
on_conflict: error
fingerprint: false
verify_links: true
# Prometheus textfile written after every run; empty disables metrics.
metrics_file: ""
logging:
  level: info
  format: text
`

// Init writes an example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil && !force:
		return derrors.ConfigError("configuration file already exists (use --force to overwrite)", nil).
			WithContext("path", path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return derrors.FileSystemError("stat", path, err)
	}

	// #nosec G306 -- config file holds no secrets
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return derrors.FileSystemError("write", path, err)
	}
	return nil
}
