// Package plugin implements spec.md §4.13's plugin registry: named,
// versioned units of extension installed via topological dependency
// resolution, each gaining access to a Registry it can attach static
// functions, instance extensions, and locale data to.
//
// No example repo in the corpus implements a plugin/dependency-graph
// registry, so the installation walk is grounded directly on spec.md
// §4.13's description ("each plugin installed at most once; dependency
// names must already be registered or appear earlier in the list"),
// expressed with the teacher's general style of small functions and a
// single concrete error type per failure class (mirrored from
// goholidays.go's HolidayError/ErrorCode, see the root package's
// errors.go).
package plugin

import (
	"fmt"
	"log"
	"sync"

	"github.com/kairos-go/kairos/locale"
)

// StaticFunc is a static function a plugin registers on the entry
// point, e.g. kairos.Use(myPlugin) making kairos-level helpers
// available by name.
type StaticFunc func(args ...any) (any, error)

// InstanceExtension is a method a plugin registers to be callable as
// if bound to an Instant ("this"). Callers look these up by name with
// Registry.Extension and pass the instant's epoch milliseconds as
// epochMS; the root package does not look them up itself.
type InstanceExtension func(epochMS int64, args ...any) (any, error)

// Plugin is an installable unit of extension.
type Plugin struct {
	Name         string
	Version      string
	Dependencies []string
	// Install receives the shared Registry and wires in whatever the
	// plugin contributes. It runs exactly once per plugin name, after
	// all of Dependencies have already been installed.
	Install func(r *Registry) error
}

// Registry is the utilities object spec.md §4.13 passes to each
// plugin's install function, and also the bookkeeping store of what has
// been installed.
type Registry struct {
	mu         sync.RWMutex
	installed  map[string]Plugin
	statics    map[string]StaticFunc
	extensions map[string]InstanceExtension
	locales    *locale.Store
}

// NewRegistry builds a registry backed by the given locale store.
func NewRegistry(locales *locale.Store) *Registry {
	return &Registry{
		installed:  make(map[string]Plugin),
		statics:    make(map[string]StaticFunc),
		extensions: make(map[string]InstanceExtension),
		locales:    locales,
	}
}

// Global is the process-wide registry, backed by locale.Global, per
// spec.md §5's "initialize-then-read" process-wide state model.
var Global = NewRegistry(locale.Global)

// RegisterStatic attaches a static function under name. Re-registering
// the same name overwrites the previous function; spec.md does not
// forbid a later plugin shadowing an earlier one's static function.
func (r *Registry) RegisterStatic(name string, fn StaticFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statics[name] = fn
}

// StaticFunc looks up a previously registered static function.
func (r *Registry) StaticFunc(name string) (StaticFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.statics[name]
	return fn, ok
}

// RegisterExtension attaches an instance extension under name.
func (r *Registry) RegisterExtension(name string, fn InstanceExtension) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extensions[name] = fn
}

// Extension looks up a previously registered instance extension.
func (r *Registry) Extension(name string) (InstanceExtension, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.extensions[name]
	return fn, ok
}

// RegisterLocale is a convenience wrapper so an install func can ship
// locale data without importing the locale package's Store directly.
func (r *Registry) RegisterLocale(code string, l locale.Locale) {
	r.locales.Register(code, l)
}

// IsInstalled reports whether a plugin with this name has already run.
func (r *Registry) IsInstalled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.installed[name]
	return ok
}

// Error is the single concrete error type the plugin registry returns,
// classified by Kind, mirroring the root package's Error/ErrorKind
// pattern.
type Error struct {
	Kind    Kind
	Message string
}

// Kind classifies a registry failure.
type Kind string

const (
	KindMissingDependency  Kind = "missing_dependency"
	KindCircularDependency Kind = "circular_dependency"
	KindInstallFailed      Kind = "install_failed"
)

func (e *Error) Error() string {
	return fmt.Sprintf("plugin: %s: %s", e.Kind, e.Message)
}

// Use installs plugins in dependency order: a plugin's Dependencies
// must already be installed (from a prior Use call) or appear earlier
// in this same plugins slice. Each plugin installs at most once —
// calling Use again with an already-installed plugin name is a no-op
// for that plugin, not an error, so repeated Use calls compose freely.
func (r *Registry) Use(plugins ...Plugin) error {
	byName := make(map[string]Plugin, len(plugins))
	for _, p := range plugins {
		byName[p.Name] = p
	}

	visiting := make(map[string]bool)
	done := make(map[string]bool)

	var install func(name string) error
	install = func(name string) error {
		if r.IsInstalled(name) || done[name] {
			return nil
		}
		p, ok := byName[name]
		if !ok {
			return &Error{Kind: KindMissingDependency, Message: fmt.Sprintf("dependency %q is not registered and does not appear in this Use call", name)}
		}
		if visiting[name] {
			return &Error{Kind: KindCircularDependency, Message: fmt.Sprintf("plugin %q participates in a dependency cycle", name)}
		}
		visiting[name] = true
		for _, dep := range p.Dependencies {
			if err := install(dep); err != nil {
				return err
			}
		}
		visiting[name] = false

		if p.Install != nil {
			if err := p.Install(r); err != nil {
				log.Printf("kairos/plugin: install of %q failed: %v", name, err)
				return &Error{Kind: KindInstallFailed, Message: fmt.Sprintf("plugin %q: %v", name, err)}
			}
		}
		r.mu.Lock()
		r.installed[name] = p
		r.mu.Unlock()
		done[name] = true
		return nil
	}

	for _, p := range plugins {
		if err := install(p.Name); err != nil {
			return err
		}
	}
	return nil
}
