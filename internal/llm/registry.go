package llm

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// ProviderStatus describes one provider for display.
type ProviderStatus struct {
	Name         string   `json:"name"`
	Configured   bool     `json:"configured"`
	Default      bool     `json:"default"`
	DefaultModel string   `json:"defaultModel"`
	Models       []string `json:"models"`
	// Reachable is set by Probe for configured providers only.
	Reachable *bool `json:"reachable,omitempty"`
}

// Registry holds a Client for every configured provider.
type Registry struct {
	cfg     Config
	clients map[string]Client
}

// NewRegistry builds clients for the providers that have credentials or an
// endpoint.
func NewRegistry(cfg Config, observer Observer) *Registry {
	r := &Registry{cfg: cfg, clients: map[string]Client{}}
	for _, name := range KnownProviders {
		if !cfg.Configured(name) {
			continue
		}
		client, err := NewClient(name, cfg, observer)
		if err != nil {
			continue
		}
		r.clients[name] = client
	}
	return r
}

// NewRegistryWithClients builds a registry from ready-made clients, keyed by
// their names.
func NewRegistryWithClients(cfg Config, clients ...Client) *Registry {
	r := &Registry{cfg: cfg, clients: map[string]Client{}}
	for _, c := range clients {
		r.clients[c.Name()] = c
	}
	return r
}

func (r *Registry) Config() Config { return r.cfg }

// Resolve returns the client for name. An empty name means the configured
// default provider.
func (r *Registry) Resolve(name string) (Client, error) {
	if name == "" {
		name = r.cfg.Provider
	}
	if c, ok := r.clients[name]; ok {
		return c, nil
	}
	if !slices.Contains(KnownProviders, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return nil, fmt.Errorf("%s: %w", name, ErrProviderNotConfigured)
}

// Chain returns the clients to try in order: the requested provider, then
// the configured fallbacks. Unconfigured providers are skipped and each
// provider appears once. An unknown requested name is an error.
func (r *Registry) Chain(name string) ([]Client, error) {
	if name == "" {
		name = r.cfg.Provider
	}
	if !slices.Contains(KnownProviders, name) {
		if _, ok := r.clients[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
	}

	var chain []Client
	seen := map[string]bool{}
	for _, n := range append([]string{name}, r.cfg.FallbackProviders...) {
		if seen[n] {
			continue
		}
		seen[n] = true
		if c, ok := r.clients[n]; ok {
			chain = append(chain, c)
		}
	}
	return chain, nil
}

// Providers reports the status of every known provider.
func (r *Registry) Providers() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(KnownProviders))
	for _, name := range KnownProviders {
		_, ok := r.clients[name]
		out = append(out, ProviderStatus{
			Name:         name,
			Configured:   ok,
			Default:      name == r.cfg.Provider,
			DefaultModel: r.cfg.DefaultModel(name),
			Models:       r.cfg.SupportedModels(name),
		})
	}
	return out
}

// Probe returns Providers with Reachable filled in for every configured
// provider. Clients are checked concurrently.
func (r *Registry) Probe(ctx context.Context) []ProviderStatus {
	statuses := r.Providers()

	var wg sync.WaitGroup
	for i := range statuses {
		client, ok := r.clients[statuses[i].Name]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(st *ProviderStatus) {
			defer wg.Done()
			up := client.Available(ctx)
			st.Reachable = &up
		}(&statuses[i])
	}
	wg.Wait()
	return statuses
}
