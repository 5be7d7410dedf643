// Package filters keeps the registry of named predicate filters that
// providers contribute and hosts mount into text/template pipelines.
package filters

import (
	"sort"
	"sync"
	"text/template"
)

// Filter is a single named template function with a short usage line
// for listings. Func holds the callable exactly as templates invoke it.
type Filter struct {
	Name string
	Doc  string
	Func any
}

// Provider supplies a named group of filters.
type Provider interface {
	Name() string
	Filters() []Filter
}

var (
	mu        sync.RWMutex
	registry  = make(map[string]Filter)
	providers = make(map[string]Provider)
)

// Register adds every filter exposed by the provider to the registry.
// It panics on a nil provider, a nil filter func, or a name already
// taken, since registration runs from package init.
func Register(p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("filters: Register provider is nil")
	}
	if _, dup := providers[p.Name()]; dup {
		panic("filters: Register called twice for provider " + p.Name())
	}
	for _, f := range p.Filters() {
		if f.Func == nil {
			panic("filters: provider " + p.Name() + " supplies nil filter " + f.Name)
		}
		if _, dup := registry[f.Name]; dup {
			panic("filters: duplicate filter name " + f.Name)
		}
		registry[f.Name] = f
	}
	providers[p.Name()] = p
}

// Lookup returns the filter registered under name.
func Lookup(name string) (Filter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names returns all registered filter names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Providers returns all registered provider names, sorted.
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProviderFilters returns the filters contributed by one provider,
// sorted by name.
func ProviderFilters(name string) ([]Filter, bool) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()
	if !ok {
		return nil, false
	}
	fs := p.Filters()
	sort.Slice(fs, func(i, j int) bool {
		return fs[i].Name < fs[j].Name
	})
	return fs, true
}

// FuncMap returns every registered filter as a text/template FuncMap.
// Filter functions follow template calling conventions: a value return
// plus an error return that aborts execution.
func FuncMap() template.FuncMap {
	mu.RLock()
	defer mu.RUnlock()
	fm := make(template.FuncMap, len(registry))
	for name, f := range registry {
		fm[name] = f.Func
	}
	return fm
}
