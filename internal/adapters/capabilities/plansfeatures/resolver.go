package plansfeatures

import (
	"context"
	"errors"
	"strings"

	"pet-nutrition/internal/ports/capabilities"
)

// Resolver implementa capabilities.CapabilitiesResolver contra plans-features.
type Resolver struct {
	client *Client
}

func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// HasFeature responde si el usuario tiene la feature. "*" en la respuesta habilita todo.
func (r *Resolver) HasFeature(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	feature := strings.TrimSpace(in.Feature)
	if feature == "" {
		return false, errors.New("feature required")
	}
	if r == nil || r.client == nil || !r.client.IsConfigured() {
		return false, ErrPlansNotConfigured
	}

	resp, err := r.client.GetCapabilities(ctx, in.UserID)
	if err != nil {
		return false, err
	}
	return resp.Capabilities[feature] || resp.Capabilities["*"], nil
}

// Resolve devuelve el mapa completo de capabilities para userID.
func (r *Resolver) Resolve(ctx context.Context, userID string) (map[string]bool, error) {
	if r == nil || r.client == nil || !r.client.IsConfigured() {
		return nil, ErrPlansNotConfigured
	}
	resp, err := r.client.GetCapabilities(ctx, userID)
	if err != nil {
		return nil, err
	}
	return resp.Capabilities, nil
}
