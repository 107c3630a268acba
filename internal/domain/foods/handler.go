package foods

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-nutrition/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/foods", func(fr chi.Router) {
		fr.Post("/", createFoodHandler(svc))
		fr.Get("/", listFoodsHandler(svc))
		fr.Get("/{foodID}", getFoodHandler(svc))
	})
}

type createFoodRequest struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Species       string  `json:"species"`
	CaloriesPerKg float64 `json:"calories_per_kg"` // kcal por kg de producto
	ServingUnit   string  `json:"serving_unit" enums:"cup,can,pouch,scoop,gram"`
	ServingGrams  float64 `json:"serving_grams"`
}

type foodResponse struct {
	ID            string      `json:"id"`
	OwnerUserID   string      `json:"owner_user_id,omitempty"`
	Shared        bool        `json:"shared"`
	Name          string      `json:"name"`
	Brand         string      `json:"brand"`
	Species       string      `json:"species,omitempty"`
	CaloriesPerKg float64     `json:"calories_per_kg"`
	ServingUnit   ServingUnit `json:"serving_unit"`
	ServingGrams  float64     `json:"serving_grams"`
	CreatedAt     time.Time   `json:"created_at"`
}

// createFoodHandler godoc
// @Summary Registrar alimento
// @Description Agrega un producto al catálogo privado del usuario. `calories_per_kg` debe ser > 0.
// @Tags foods
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createFoodRequest true "Datos del producto"
// @Success 201 {object} foodResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /foods [post]
func createFoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createFoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:          req.Name,
			Brand:         req.Brand,
			Species:       req.Species,
			CaloriesPerKg: req.CaloriesPerKg,
			ServingUnit:   req.ServingUnit,
			ServingGrams:  req.ServingGrams,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toFoodResponse(f))
	}
}

// listFoodsHandler godoc
// @Summary Listar alimentos
// @Description Productos propios más el catálogo compartido.
// @Tags foods
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param species query string false "Filtra por especie (incluye los productos sin especie)"
// @Success 200 {array} foodResponse
// @Failure 401 {string} string "unauthorized"
// @Router /foods [get]
func listFoodsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		species := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("species")))

		out := make([]foodResponse, 0, len(items))
		for _, f := range items {
			if species != "" && f.Species != "" && f.Species != species {
				continue
			}
			out = append(out, toFoodResponse(f))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getFoodHandler godoc
// @Summary Ver alimento
// @Tags foods
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param foodID path string true "ID del producto"
// @Success 200 {object} foodResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "food not found"
// @Router /foods/{foodID} [get]
func getFoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		f, err := svc.GetVisible(r.Context(), chi.URLParam(r, "foodID"), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "food not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toFoodResponse(f))
	}
}

func toFoodResponse(f Food) foodResponse {
	return foodResponse{
		ID:            f.ID,
		OwnerUserID:   f.OwnerUserID,
		Shared:        f.Shared(),
		Name:          f.Name,
		Brand:         f.Brand,
		Species:       f.Species,
		CaloriesPerKg: f.CaloriesPerKg,
		ServingUnit:   f.ServingUnit,
		ServingGrams:  f.ServingGrams,
		CreatedAt:     f.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
