package auth

import (
	"context"
	"strings"
)

// Claims es la identidad del caller tras verificar el token.
// TenantID queda vacío cuando el IAM no lo informa.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// Valid exige al menos un UserID; sin él no hay dueño de mascotas.
func (c Claims) Valid() bool {
	return strings.TrimSpace(c.UserID) != ""
}

// Verifier valida un bearer token contra el IAM.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
