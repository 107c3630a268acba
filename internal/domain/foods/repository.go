package foods

import "context"

type Repository interface {
	Create(ctx context.Context, f Food) error
	GetByID(ctx context.Context, id string) (Food, error)
	// ListVisible devuelve los productos del usuario + los compartidos.
	ListVisible(ctx context.Context, userID string) ([]Food, error)
}
