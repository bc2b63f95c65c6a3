package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

// EnvFiles are read, in order, by LoadEnvFiles.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads every existing file of EnvFiles into the process
// environment. Variables that are already set are kept, so the real
// environment wins over .env, and .env wins over .env.local. It returns
// the files that were read.
func LoadEnvFiles() ([]string, error) {
	return loadEnvFiles(EnvFiles)
}

func loadEnvFiles(names []string) ([]string, error) {
	var loaded []string
	for _, name := range names {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return loaded, derrors.ConfigError("failed to load env file", err).WithContext("path", name)
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}
