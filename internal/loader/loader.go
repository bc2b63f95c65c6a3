// Package loader reads API description files and registers them by package
// name.
package loader

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
)

// ConflictPolicy decides what happens when two inputs describe the same
// package name.
type ConflictPolicy string

const (
	// ConflictError rejects the second description.
	ConflictError ConflictPolicy = "error"
	// ConflictReplace keeps the last description loaded.
	ConflictReplace ConflictPolicy = "replace"
)

// ParseConflictPolicy normalizes raw. The empty string selects ConflictError.
func ParseConflictPolicy(raw string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return ConflictError, nil
	case ConflictError, ConflictReplace:
		return p, nil
	default:
		return "", derrors.ValidationFailed("on_conflict", fmt.Sprintf("unsupported value %q (want error or replace)", raw))
	}
}

// LoadFile reads and decodes one description. Every failure is a LoadError
// carrying the path.
func LoadFile(path string) (*apimodel.PackageDescription, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, derrors.LoadError(path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	desc, err := apimodel.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, derrors.LoadError(path, err)
	}
	return desc, nil
}

type entry struct {
	desc   *apimodel.PackageDescription
	source string
}

// PackageSet holds loaded descriptions keyed by package name.
type PackageSet struct {
	policy   ConflictPolicy
	logger   *slog.Logger
	packages map[string]entry
}

// NewPackageSet creates an empty set using policy for name collisions.
func NewPackageSet(policy ConflictPolicy, logger *slog.Logger) *PackageSet {
	if policy == "" {
		policy = ConflictError
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PackageSet{
		policy:   policy,
		logger:   logger,
		packages: make(map[string]entry),
	}
}

// Load reads path and adds its description to the set.
func (s *PackageSet) Load(path string) (*apimodel.PackageDescription, error) {
	desc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Add(desc, path); err != nil {
		return nil, err
	}
	return desc, nil
}

// Add registers desc, loaded from source, applying the conflict policy.
func (s *PackageSet) Add(desc *apimodel.PackageDescription, source string) error {
	if prev, ok := s.packages[desc.Name]; ok {
		if s.policy != ConflictReplace {
			return derrors.PackageConflictError(desc.Name, prev.source, source)
		}
		s.logger.Warn("Package described more than once, keeping last",
			logfields.Package(desc.Name),
			slog.String("previous", prev.source),
			logfields.Path(source))
	}
	s.packages[desc.Name] = entry{desc: desc, source: source}
	return nil
}

// Len returns the number of packages.
func (s *PackageSet) Len() int { return len(s.packages) }

// Sorted returns the descriptions ordered by package name.
func (s *PackageSet) Sorted() []*apimodel.PackageDescription {
	names := make([]string, 0, len(s.packages))
	for name := range s.packages {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*apimodel.PackageDescription, 0, len(names))
	for _, name := range names {
		out = append(out, s.packages[name].desc)
	}
	return out
}
