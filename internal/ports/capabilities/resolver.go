package capabilities

import "context"

// CapabilityCheck pregunta si un usuario tiene una feature de su plan.
type CapabilityCheck struct {
	UserID  string
	Feature string // p.ej. "nutrition:feeding_calculator"
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}

// AllowAll habilita todo; se usa en dev (ALLOW_ALL_CAPABILITIES=true).
type AllowAll struct{}

func (AllowAll) HasFeature(context.Context, CapabilityCheck) (bool, error) {
	return true, nil
}
