package feeding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-nutrition/internal/domain/events/details"
	"pet-nutrition/internal/domain/foods"
	"pet-nutrition/internal/domain/nutrition"
	"pet-nutrition/internal/domain/pets"
	"pet-nutrition/internal/middleware"
	"pet-nutrition/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// RegisterRoutes monta las rutas de ración. caps puede ser nil (sin gating por plan).
func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver) {
	r.Post("/pets/{petID}/feeding/recommendation", recommendationHandler(svc, caps))
	r.Post("/feeding/calculate", calculateHandler(svc))
}

type recommendationRequest struct {
	FoodID        string  `json:"food_id"`
	CaloriesPerKg float64 `json:"calories_per_kg"` // solo si no se indica food_id
	WeightKg      float64 `json:"weight_kg"`       // opcional; por defecto el último peso registrado
	Lifestyle     string  `json:"lifestyle" enums:"normal,inactive,weight_loss"`
	CycleState    string  `json:"cycle_state" enums:"none,gestation,lactation,gestation_and_lactation"`
	AsOf          string  `json:"as_of"` // YYYY-MM-DD, opcional
}

type calculateRequest struct {
	Weight             float64 `json:"weight"`
	WeightUnit         string  `json:"weight_unit" enums:"kg,lb,g"`
	Species            string  `json:"species" enums:"dog,cat"`
	ReproductiveStatus string  `json:"reproductive_status" enums:"neutered_male,spayed_female,intact_male,intact_female,unknown"`
	BirthDate          string  `json:"birth_date"` // YYYY-MM-DD, opcional
	AsOf               string  `json:"as_of"`      // YYYY-MM-DD, opcional
	Lifestyle          string  `json:"lifestyle" enums:"normal,inactive,weight_loss"`
	CycleState         string  `json:"cycle_state" enums:"none,gestation,lactation,gestation_and_lactation"`
	CaloriesPerKg      float64 `json:"calories_per_kg"`
	ServingGrams       float64 `json:"serving_grams"` // opcional, para devolver porciones
}

type recommendationResponse struct {
	PetID  string `json:"pet_id,omitempty"`
	FoodID string `json:"food_id,omitempty"`
	AsOf   string `json:"as_of"`

	WeightKg         float64    `json:"weight_kg"`
	WeightRecordedAt *time.Time `json:"weight_recorded_at,omitempty"`

	AgeMonths int  `json:"age_months"`
	AgeYears  int  `json:"age_years"`
	AgeKnown  bool `json:"age_known"`

	RER         float64 `json:"rer_kcal"`
	Factor      float64 `json:"factor"`
	MER         float64 `json:"mer_kcal"`
	GramsPerDay float64 `json:"grams_per_day"`

	Portions    float64 `json:"portions,omitempty"`
	ServingUnit string  `json:"serving_unit,omitempty"`

	// Sufficient=false: faltó peso o densidad calórica; grams_per_day es 0.
	Sufficient bool `json:"sufficient"`
}

// recommendationHandler godoc
// @Summary Ración diaria de una mascota
// @Description Calcula los gramos diarios a partir del perfil, el último peso registrado y el alimento elegido.
// @Description Sin peso registrado responde 200 con `sufficient=false` y 0 g.
// @Tags feeding
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body recommendationRequest true "Parámetros del cálculo"
// @Success 200 {object} recommendationResponse
// @Failure 400 {string} string "invalid json / lifestyle / cycle state"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden / feature not in plan"
// @Failure 404 {string} string "pet not found / food not found"
// @Failure 502 {string} string "capabilities unavailable"
// @Router /pets/{petID}/feeding/recommendation [post]
func recommendationHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if caps != nil {
			allowed, err := caps.HasFeature(r.Context(), capabilities.CapabilityCheck{
				UserID:  claims.UserID,
				Feature: FeatureCalculator,
			})
			if err != nil {
				http.Error(w, "capabilities unavailable", http.StatusBadGateway)
				return
			}
			if !allowed {
				http.Error(w, "feature not in plan", http.StatusForbidden)
				return
			}
		}

		var req recommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		asOf, err := parseDate(req.AsOf)
		if err != nil {
			http.Error(w, "invalid as_of (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		res, err := svc.Recommend(r.Context(), RecommendInput{
			PetID:         chi.URLParam(r, "petID"),
			UserID:        claims.UserID,
			FoodID:        req.FoodID,
			CaloriesPerKg: req.CaloriesPerKg,
			WeightKg:      req.WeightKg,
			Lifestyle:     req.Lifestyle,
			CycleState:    req.CycleState,
			AsOf:          asOf,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := toResponse(res.AsOf, res.WeightKg, res.Recommendation)
		out.PetID = res.Pet.ID
		out.WeightRecordedAt = res.WeightAt
		if res.Food != nil {
			out.FoodID = res.Food.ID
			if res.Portions > 0 {
				out.Portions = res.Portions
				out.ServingUnit = string(res.Food.ServingUnit)
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// calculateHandler godoc
// @Summary Calcular ración (sin mascota)
// @Description Cálculo directo con todos los datos en el body. No requiere autenticación.
// @Tags feeding
// @Accept json
// @Produce json
// @Param payload body calculateRequest true "Datos del animal y del alimento"
// @Success 200 {object} recommendationResponse
// @Failure 400 {string} string "invalid json / lifestyle / cycle state / fechas"
// @Router /feeding/calculate [post]
func calculateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			writeError(w, err)
			return
		}

		if in.AsOf.IsZero() {
			in.AsOf = svc.now()
		}
		rec := svc.Calculate(in)

		out := toResponse(in.AsOf, in.WeightKg, rec)
		if p := nutrition.PortionCount(rec.GramsPerDay, req.ServingGrams); p > 0 {
			out.Portions = p
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (req calculateRequest) toInput() (nutrition.Input, error) {
	lifestyle, err := nutrition.ParseLifestyle(req.Lifestyle)
	if err != nil {
		return nutrition.Input{}, err
	}
	cycle, err := nutrition.ParseCycleState(req.CycleState)
	if err != nil {
		return nutrition.Input{}, err
	}

	unit, err := details.ParseUnit(req.WeightUnit)
	if err != nil {
		return nutrition.Input{}, ErrInvalidInput
	}
	kg := details.Measurement{Kind: details.MeasurementKindWeight, Value: req.Weight, Unit: unit}.Kilograms()

	in := nutrition.Input{
		WeightKg:      kg,
		Species:       nutrition.ParseSpecies(req.Species),
		Status:        nutrition.ParseReproductiveStatus(req.ReproductiveStatus),
		Lifestyle:     lifestyle,
		Cycle:         cycle,
		CaloriesPerKg: req.CaloriesPerKg,
	}

	bd, err := parseDate(req.BirthDate)
	if err != nil {
		return nutrition.Input{}, ErrInvalidInput
	}
	if bd != nil {
		in.BirthDate = *bd
	}
	asOf, err := parseDate(req.AsOf)
	if err != nil {
		return nutrition.Input{}, ErrInvalidInput
	}
	if asOf != nil {
		in.AsOf = *asOf
	}
	return in, nil
}

func toResponse(asOf time.Time, weightKg float64, rec nutrition.Recommendation) recommendationResponse {
	return recommendationResponse{
		AsOf:        asOf.Format(dateLayout),
		WeightKg:    weightKg,
		AgeMonths:   rec.Age.Months,
		AgeYears:    rec.Age.Years,
		AgeKnown:    rec.Age.Known,
		RER:         rec.RER,
		Factor:      rec.Factor,
		MER:         rec.MER,
		GramsPerDay: rec.GramsPerDay,
		Sufficient:  rec.Sufficient,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, nutrition.ErrInvalidLifestyle),
		errors.Is(err, nutrition.ErrInvalidCycleState),
		errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, foods.ErrNotFound):
		http.Error(w, "food not found", http.StatusNotFound)
	default:
		pets.WriteAuthError(w, err)
	}
}

// parseDate: vacío => nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
