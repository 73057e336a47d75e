package flows

import (
	"context"
	"fmt"
	"sort"
)

// Info describes a registered flow
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry looks flows up by name
type Registry struct {
	flows map[string]Flow
}

// NewRegistry creates a registry holding the given flows
func NewRegistry(flows ...Flow) *Registry {
	r := &Registry{flows: make(map[string]Flow, len(flows))}
	for _, f := range flows {
		r.flows[f.Name()] = f
	}
	return r
}

// NewDefaultRegistry registers every built-in flow against model
func NewDefaultRegistry(model Model) *Registry {
	return NewRegistry(
		NewInsightsFlow(model),
		NewCampaignImageFlow(model),
	)
}

// List returns the registered flows sorted by name
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.flows))
	for _, f := range r.flows {
		infos = append(infos, Info{Name: f.Name(), Description: f.Description()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Run executes the named flow with a raw JSON input
func (r *Registry) Run(ctx context.Context, name string, input []byte) (interface{}, error) {
	f, ok := r.flows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}
	return f.Run(ctx, input)
}
