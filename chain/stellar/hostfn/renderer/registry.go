package renderer

import (
	"errors"
	"fmt"
	"slices"
)

// Registry maps output format ids to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// NewDefaultRegistry returns a registry holding the text, html, table and yaml renderers
// configured with opts.
func NewDefaultRegistry(opts Options) (*Registry, error) {
	text, err := NewTextRenderer(opts)
	if err != nil {
		return nil, err
	}
	html, err := NewHTMLRenderer(opts)
	if err != nil {
		return nil, err
	}
	table, err := NewTableRenderer(opts)
	if err != nil {
		return nil, err
	}
	yml, err := NewYAMLRenderer(opts)
	if err != nil {
		return nil, err
	}

	r := NewRegistry()
	for _, renderer := range []Renderer{text, html, table, yml} {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds renderer under its ID. A nil renderer, an empty ID or an ID that is already
// taken is rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("nil renderer")
	}

	id := renderer.ID()
	if id == "" {
		return errors.New("renderer has an empty id")
	}

	if _, taken := r.renderers[id]; taken {
		return fmt.Errorf("format %q already has a renderer", id)
	}

	r.renderers[id] = renderer

	return nil
}

// Get returns the renderer for format id.
func (r *Registry) Get(id string) (Renderer, bool) {
	out, ok := r.renderers[id]

	return out, ok
}

// List returns the registered format ids, sorted.
func (r *Registry) List() []string {
	ids := make([]string, 0, len(r.renderers))
	for id := range r.renderers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
