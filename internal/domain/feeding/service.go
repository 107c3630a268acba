package feeding

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-nutrition/internal/domain/events"
	"pet-nutrition/internal/domain/foods"
	"pet-nutrition/internal/domain/nutrition"
	"pet-nutrition/internal/domain/pets"
	"pet-nutrition/internal/metrics"
	"pet-nutrition/internal/platform/logger"
)

// FeatureCalculator es la capability de plan que habilita la recomendación por mascota.
const FeatureCalculator = "nutrition:feeding_calculator"

var ErrInvalidInput = errors.New("invalid input")

type PetAuthorizer interface {
	Authorize(ctx context.Context, petID, userID string) (pets.Pet, error)
}

type WeightReader interface {
	LatestWeight(ctx context.Context, petID string) (events.Weight, error)
}

type FoodReader interface {
	GetVisible(ctx context.Context, id, userID string) (foods.Food, error)
}

type Service struct {
	pets    PetAuthorizer
	weights WeightReader
	foods   FoodReader
	log     logger.Logger
	now     func() time.Time
}

func NewService(p PetAuthorizer, w WeightReader, f FoodReader, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		pets:    p,
		weights: w,
		foods:   f,
		log:     log,
		now:     time.Now,
	}
}

type RecommendInput struct {
	PetID  string
	UserID string

	// FoodID toma la densidad calórica del catálogo; si viene vacío se usa CaloriesPerKg.
	FoodID        string
	CaloriesPerKg float64

	// WeightKg > 0 reemplaza el último peso registrado.
	WeightKg float64

	Lifestyle  string
	CycleState string

	// AsOf nil => hoy.
	AsOf *time.Time
}

type Result struct {
	Pet  pets.Pet
	Food *foods.Food

	WeightKg float64
	// WeightAt es nil si el peso vino en el request o no hay registro.
	WeightAt *time.Time

	AsOf           time.Time
	Recommendation nutrition.Recommendation

	// Portions en la unidad del alimento (0 si no aplica).
	Portions float64
}

// Recommend arma el cálculo a partir del perfil, el último peso y el alimento.
// Sin peso o sin kcal no es error: el resultado sale con Sufficient=false y 0 g.
func (s *Service) Recommend(ctx context.Context, in RecommendInput) (Result, error) {
	lifestyle, err := nutrition.ParseLifestyle(in.Lifestyle)
	if err != nil {
		return Result{}, err
	}
	cycle, err := nutrition.ParseCycleState(in.CycleState)
	if err != nil {
		return Result{}, err
	}
	if in.WeightKg < 0 || in.CaloriesPerKg < 0 {
		return Result{}, ErrInvalidInput
	}

	p, err := s.pets.Authorize(ctx, strings.TrimSpace(in.PetID), in.UserID)
	if err != nil {
		return Result{}, err
	}

	res := Result{Pet: p, AsOf: s.asOf(in.AsOf)}

	kcal := in.CaloriesPerKg
	if foodID := strings.TrimSpace(in.FoodID); foodID != "" {
		f, err := s.foods.GetVisible(ctx, foodID, in.UserID)
		if err != nil {
			return Result{}, err
		}
		res.Food = &f
		kcal = f.CaloriesPerKg
	}

	if in.WeightKg > 0 {
		res.WeightKg = in.WeightKg
	} else {
		w, err := s.weights.LatestWeight(ctx, p.ID)
		switch {
		case err == nil:
			res.WeightKg = w.Kilograms
			at := w.OccurredAt
			res.WeightAt = &at
		case errors.Is(err, events.ErrNoWeight):
			// se calcula igual; queda insuficiente
		default:
			return Result{}, err
		}
	}

	input := nutrition.Input{
		WeightKg:      res.WeightKg,
		Species:       nutrition.ParseSpecies(string(p.Species)),
		Status:        nutrition.ParseReproductiveStatus(string(p.ReproductiveStatus)),
		AsOf:          res.AsOf,
		Lifestyle:     lifestyle,
		Cycle:         cycle,
		CaloriesPerKg: kcal,
	}
	if p.BirthDate != nil {
		input.BirthDate = *p.BirthDate
	}

	res.Recommendation = s.Calculate(input)
	if res.Food != nil && res.Food.ServingUnit != foods.ServingGram {
		res.Portions = nutrition.PortionCount(res.Recommendation.GramsPerDay, res.Food.ServingGrams)
	}

	s.log.Debug("feeding recommendation", map[string]any{
		"pet_id":     p.ID,
		"species":    string(input.Species),
		"weight_kg":  res.WeightKg,
		"factor":     res.Recommendation.Factor,
		"grams":      res.Recommendation.GramsPerDay,
		"sufficient": res.Recommendation.Sufficient,
	})
	return res, nil
}

// Calculate es el cálculo directo, sin mascota registrada.
func (s *Service) Calculate(in nutrition.Input) nutrition.Recommendation {
	if in.AsOf.IsZero() {
		in.AsOf = s.now()
	}
	rec := nutrition.Recommend(in)
	metrics.RecordFeeding(string(in.Species), rec.Sufficient)
	return rec
}

func (s *Service) asOf(t *time.Time) time.Time {
	if t != nil && !t.IsZero() {
		return *t
	}
	return s.now()
}
