// Package templates resolves component names to the renderable templates the
// views are built against. Widgets never resolve names themselves.
package templates

import (
	"errors"
	"fmt"
	"sort"
)

const (
	CounterWizard  = "counter-wizard"
	FieldSimulator = "field/simulator"
)

var ErrUnknownTemplate = errors.New("templates: unknown template")

// Template is the opaque reference a view renders against.
type Template struct {
	Name  string
	Title string
	Help  string
}

type Registry struct {
	entries map[string]Template
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Template)}
}

// Default returns a registry holding the built-in components.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Template{
		Name:  CounterWizard,
		Title: "PROGRESS",
		Help:  "one cube per step, pulses when a step changes",
	})
	r.Register(Template{
		Name:  FieldSimulator,
		Title: "COUNT THE CUBES",
		Help:  "how many orange cubes are there?",
	})
	return r
}

// Register adds or replaces t under t.Name.
func (r *Registry) Register(t Template) {
	r.entries[t.Name] = t
}

func (r *Registry) Resolve(name string) (Template, error) {
	t, ok := r.entries[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownTemplate, name, r.Names())
	}
	return t, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
