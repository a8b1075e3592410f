// Package provider holds the explicit external identity provider
// registry. Providers are declared in configuration and loaded once at
// process start; there is no runtime discovery.
package provider

import (
	"context"
	"strings"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
)

// Identity is the set of claims handed back by a provider after a
// successful handshake. Transient; callers stash it as a pending
// assertion until it is consumed exactly once.
type Identity struct {
	Provider string `json:"provider"`
	Subject  string `json:"subject"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Capability records what a configured provider is allowed to do.
type Capability struct {
	Enabled     bool
	ShowOnLogin bool
}

// Provider is one entry of the registry.
type Provider interface {
	Name() string
	Capability() Capability
	// Challenge builds the URL that begins the provider handshake.
	Challenge(state string) string
	// Exchange completes the handshake: trades the callback code for a
	// verified identity.
	Exchange(ctx context.Context, code string) (*Identity, error)
}

// Registry maps provider name to its capability record and handshake
// implementation.
type Registry struct {
	entries map[string]Provider
	order   []string
}

// NewRegistry builds the registry from static configuration.
func NewRegistry(ctx context.Context, cfg config.Providers) (*Registry, error) {
	r := &Registry{
		entries: map[string]Provider{},
	}
	for _, entry := range cfg.Entries {
		p, err := newOIDCProvider(ctx, entry)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to configure provider %s", entry.Name)
		}
		r.entries[strings.ToLower(entry.Name)] = p
		r.order = append(r.order, entry.Name)
	}
	return r, nil
}

// Get looks a provider up by name, case insensitively.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.entries[strings.ToLower(name)]
	if !ok || !p.Capability().Enabled {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "Unknown provider: %s", name)
	}
	return p, nil
}

// LoginOptions lists the providers to surface on the sign-in form, in
// configuration order.
func (r *Registry) LoginOptions() []string {
	var names []string
	for _, name := range r.order {
		p := r.entries[strings.ToLower(name)]
		if p.Capability().Enabled && p.Capability().ShowOnLogin {
			names = append(names, p.Name())
		}
	}
	return names
}
