package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-nutrition/internal/domain/foods"
)

type foodRepo struct {
	mu   sync.RWMutex
	byID map[string]foods.Food
}

func NewFoodRepo() foods.Repository {
	return &foodRepo{
		byID: make(map[string]foods.Food),
	}
}

func (r *foodRepo) Create(ctx context.Context, f foods.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("food id required")
	}
	if _, exists := r.byID[f.ID]; exists {
		return errors.New("food already exists")
	}
	r.byID[f.ID] = f
	return nil
}

func (r *foodRepo) GetByID(ctx context.Context, id string) (foods.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return foods.Food{}, foods.ErrNotFound
	}
	return f, nil
}

func (r *foodRepo) ListVisible(ctx context.Context, userID string) ([]foods.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]foods.Food, 0)
	for _, f := range r.byID {
		if f.Shared() || (userID != "" && f.OwnerUserID == userID) {
			out = append(out, f)
		}
	}

	// Compartidos primero, luego por marca y nombre.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Shared() != out[j].Shared() {
			return out[i].Shared()
		}
		if out[i].Brand != out[j].Brand {
			return out[i].Brand < out[j].Brand
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}
