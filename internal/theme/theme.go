// Package theme defines the renderer capability set and a registry of named
// implementations. Themes register themselves from init, so adding one never
// touches the dispatch point.
package theme

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/loader"
)

// Theme loads API descriptions and renders them into pages.
type Theme interface {
	// Name returns the registry name of the theme.
	Name() string

	// LoadFromFile reads one description into the theme's package set.
	LoadFromFile(ctx context.Context, path string) error

	// Render clears the output directory and writes every page. It returns
	// the written pages in write order.
	Render(ctx context.Context) ([]apimodel.RenderedPage, error)
}

// Options configures a theme instance.
type Options struct {
	// OutDir is the destination directory. Its contents are replaced.
	OutDir string
	// Layout is copied verbatim into every page's front matter.
	Layout string
	// OnConflict decides how duplicate package names are handled.
	OnConflict loader.ConflictPolicy
	// Fingerprint adds a content fingerprint to every page's front matter.
	Fingerprint bool
	Logger      *slog.Logger
}

// Factory builds a theme instance.
type Factory func(opts Options) (Theme, error)

// Registry maps theme names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a factory under name. Registering a name twice is an error.
func (r *Registry) Register(name string, f Factory) error {
	key := normalize(name)
	if key == "" || f == nil {
		return derrors.ValidationFailed("theme", "name and factory are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[key]; exists {
		return derrors.ValidationFailed("theme", "theme "+key+" already registered")
	}
	r.factories[key] = f
	return nil
}

// Has reports whether name is registered (case-insensitive).
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalize(name)]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New instantiates the theme registered under name. An unknown name fails
// with UnknownThemeError without performing any I/O.
func (r *Registry) New(name string, opts Options) (Theme, error) {
	r.mu.RLock()
	f, ok := r.factories[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, derrors.UnknownThemeError(name, r.Names())
	}
	return f(opts)
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry built-in themes join.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a factory to the default registry.
func Register(name string, f Factory) error { return defaultRegistry.Register(name, f) }
