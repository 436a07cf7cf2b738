// Package themes keeps named style sheets and tracks which one is active.
//
// A theme is just a fully populated styles.Sheet registered under a name
// ("dark", "light", "high-contrast"). Consumers resolve queries against
// the active sheet and switch themes by activating another name. The
// registry is safe for concurrent use; the sheets it hands out follow the
// styles package's own concurrency rules.
package themes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/styles"
)

// Registry stores sheets by theme name, with at most one active at a time.
type Registry[T any] interface {
	// Register adds a theme. The name must be non-empty and unused.
	Register(name string, sheet *styles.Sheet[T]) error

	// Get retrieves a theme's sheet by name.
	Get(name string) (*styles.Sheet[T], error)

	// Remove deletes a theme. Removing the active theme leaves no theme
	// active.
	Remove(name string) error

	// List returns all theme names, sorted.
	List() []string

	// Has checks if a theme is registered.
	Has(name string) bool

	// Clear removes every theme and deactivates.
	Clear()

	// Count returns the number of registered themes.
	Count() int

	// SetActive marks a registered theme as the active one.
	SetActive(name string) error

	// Active returns the active theme's sheet.
	Active() (*styles.Sheet[T], error)

	// ActiveName returns the active theme's name, or "" when none is
	// active.
	ActiveName() string
}

type registry[T any] struct {
	mu     sync.RWMutex
	sheets map[string]*styles.Sheet[T]
	active string
}

// NewRegistry creates an empty theme registry with nothing active.
func NewRegistry[T any]() Registry[T] {
	return &registry[T]{
		sheets: make(map[string]*styles.Sheet[T]),
	}
}

func (r *registry[T]) Register(name string, sheet *styles.Sheet[T]) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "theme name cannot be empty")
	}
	if sheet == nil {
		return errors.Newf(errors.ErrInvalidInput, "theme '%s' has no sheet", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "theme '%s' is already registered", name)
	}

	r.sheets[name] = sheet
	return nil
}

func (r *registry[T]) Get(name string) (*styles.Sheet[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet, exists := r.sheets[name]
	if !exists {
		return nil, errors.Newf(errors.ErrNotFound, "theme '%s' not found", name)
	}
	return sheet, nil
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "theme '%s' not found", name)
	}

	delete(r.sheets, name)
	if r.active == name {
		r.active = ""
	}
	return nil
}

// List returns all theme names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sheets))
	for name := range r.sheets {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.sheets[name]
	return exists
}

func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sheets = make(map[string]*styles.Sheet[T])
	r.active = ""
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sheets)
}

func (r *registry[T]) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "theme '%s' not found", name)
	}
	r.active = name
	return nil
}

func (r *registry[T]) Active() (*styles.Sheet[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == "" {
		return nil, errors.New(errors.ErrNotFound, "no active theme")
	}
	return r.sheets[r.active], nil
}

func (r *registry[T]) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// MustRegister registers a theme and panics if registration fails.
// Useful for setup code where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, sheet *styles.Sheet[T]) {
	if err := reg.Register(name, sheet); err != nil {
		panic(fmt.Sprintf("failed to register theme %s: %v", name, err))
	}
}

// MustGet retrieves a theme and panics if not found.
func MustGet[T any](reg Registry[T], name string) *styles.Sheet[T] {
	sheet, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get theme %s: %v", name, err))
	}
	return sheet
}
