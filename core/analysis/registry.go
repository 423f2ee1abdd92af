// Package analysis provides the analysis registry.
// Analyses are modular units that bind study blocks to calculators; new
// ones can be added without modifying core.
package analysis

import (
	"sort"
	"sync"

	"gridcalc/core/output"
	"gridcalc/core/study"
	"gridcalc/internal/errors"
)

// Analysis runs one kind of calculation over a study.
type Analysis interface {
	// Name returns the analysis identifier
	Name() string

	// Description returns a human-readable description
	Description() string

	// Run produces one report per matching study subject; a study with no
	// matching blocks yields no reports and no error
	Run(s *study.Study) ([]output.Report, error)
}

// Registry manages analysis registration
type Registry struct {
	mu       sync.RWMutex
	analyses map[string]Analysis
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		analyses: make(map[string]Analysis),
	}
}

// Register adds an analysis to the registry.
func (r *Registry) Register(a Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.analyses[a.Name()]; exists {
		return errors.Newf(errors.TypeInternal, "analysis already registered: %s", a.Name())
	}
	r.analyses[a.Name()] = a
	return nil
}

// Get returns an analysis by name.
func (r *Registry) Get(name string) (Analysis, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.analyses[name]
	return a, ok
}

// Names returns all registered analysis names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.analyses))
	for name := range r.analyses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunAll runs every registered analysis (or only those named in only, when
// non-empty) over the study, in name order.
func (r *Registry) RunAll(s *study.Study, only []string) ([]output.Report, error) {
	names := r.Names()
	if len(only) > 0 {
		for _, name := range only {
			if _, ok := r.Get(name); !ok {
				return nil, errors.NotFound("analysis", name)
			}
		}
		names = only
	}

	var reports []output.Report
	for _, name := range names {
		a, _ := r.Get(name)
		got, err := a.Run(s)
		if err != nil {
			return nil, err
		}
		reports = append(reports, got...)
	}
	return reports, nil
}

// Global default registry holding the built-in analyses.
var defaultRegistry = NewRegistry()

// Default returns the default registry.
func Default() *Registry {
	return defaultRegistry
}

func init() {
	for _, a := range builtins() {
		if err := defaultRegistry.Register(a); err != nil {
			panic(err)
		}
	}
}
