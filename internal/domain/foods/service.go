package foods

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("food not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name          string
	Brand         string
	Species       string
	CaloriesPerKg float64
	ServingUnit   string
	ServingGrams  float64
}

// Create registra un producto. ownerUserID vacío lo deja en el catálogo compartido
// (solo lo usa el seed de arranque; la API siempre pasa el usuario).
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Food, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Food{}, ErrInvalidInput
	}
	if in.CaloriesPerKg <= 0 {
		return Food{}, ErrInvalidInput
	}
	if in.ServingGrams < 0 {
		return Food{}, ErrInvalidInput
	}

	unit, err := parseServingUnit(in.ServingUnit)
	if err != nil {
		return Food{}, err
	}

	now := s.now()
	f := Food{
		ID:            uuid.NewString(),
		OwnerUserID:   strings.TrimSpace(ownerUserID),
		Name:          name,
		Brand:         strings.TrimSpace(in.Brand),
		Species:       strings.ToLower(strings.TrimSpace(in.Species)),
		CaloriesPerKg: in.CaloriesPerKg,
		ServingUnit:   unit,
		ServingGrams:  in.ServingGrams,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if unit == ServingGram {
		f.ServingGrams = 1
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Food{}, err
	}
	return f, nil
}

// GetVisible devuelve el producto si es del usuario o del catálogo compartido.
// Productos de otros usuarios se reportan como ErrNotFound.
func (s *Service) GetVisible(ctx context.Context, id, userID string) (Food, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Food{}, ErrNotFound
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Food{}, err
	}
	if !f.Shared() && f.OwnerUserID != userID {
		return Food{}, ErrNotFound
	}
	return f, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Food, error) {
	return s.repo.ListVisible(ctx, strings.TrimSpace(userID))
}

func parseServingUnit(raw string) (ServingUnit, error) {
	switch u := ServingUnit(strings.ToLower(strings.TrimSpace(raw))); u {
	case "":
		return ServingGram, nil
	case ServingCup, ServingCan, ServingPouch, ServingScoop, ServingGram:
		return u, nil
	default:
		return "", ErrInvalidInput
	}
}
