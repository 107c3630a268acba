package pets

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
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
	})
}

// createPetRequest es el cuerpo para registrar una mascota.
type createPetRequest struct {
	Name               string `json:"name"`
	Species            string `json:"species" enums:"dog,cat"`
	Breed              string `json:"breed"`
	Sex                string `json:"sex" enums:"male,female,unknown"`
	ReproductiveStatus string `json:"reproductive_status" enums:"neutered_male,spayed_female,intact_male,intact_female,unknown"`
	BirthDate          string `json:"birth_date"` // YYYY-MM-DD opcional
	Microchip          string `json:"microchip"`
	Notes              string `json:"notes"`
}

type petResponse struct {
	ID                 string             `json:"id"`
	OwnerUserID        string             `json:"owner_user_id"`
	Name               string             `json:"name"`
	Species            Species            `json:"species"`
	Breed              string             `json:"breed"`
	Sex                Sex                `json:"sex"`
	ReproductiveStatus ReproductiveStatus `json:"reproductive_status"`
	BirthDate          *time.Time         `json:"birth_date,omitempty"`
	Microchip          string             `json:"microchip,omitempty"`
	Notes              string             `json:"notes"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type updatePetRequest struct {
	Name               *string `json:"name"`
	Species            *string `json:"species"`
	Breed              *string `json:"breed"`
	Sex                *string `json:"sex"`
	ReproductiveStatus *string `json:"reproductive_status"`
	Microchip          *string `json:"microchip"`
	Notes              *string `json:"notes"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota cuyo dueño es el usuario autenticado.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:               req.Name,
			Species:            req.Species,
			Breed:              req.Breed,
			Sex:                req.Sex,
			ReproductiveStatus: req.ReproductiveStatus,
			BirthDate:          bd,
			Microchip:          req.Microchip,
			Notes:              req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Ver perfil de mascota
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.Authorize(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			WriteAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar perfil de mascota
// @Description PATCH real: los campos omitidos no se tocan. `birth_date: null` limpia la fecha.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Decodificamos a map primero para detectar presencia de "birth_date".
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updatePetRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		bd := patchBirthDate{}
		if v, exists := raw["birth_date"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				bd.Value = &s
			}
		}

		updated, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "petID"), claims.UserID, UpdateProfileInput{
			Name:               req.Name,
			Species:            req.Species,
			Breed:              req.Breed,
			Sex:                req.Sex,
			ReproductiveStatus: req.ReproductiveStatus,
			BirthDate:          bd,
			Microchip:          req.Microchip,
			Notes:              req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			WriteAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// WriteAuthError traduce errores de Authorize a status HTTP.
// Exportado para que events/feeding respondan igual.
func WriteAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:                 p.ID,
		OwnerUserID:        p.OwnerUserID,
		Name:               p.Name,
		Species:            p.Species,
		Breed:              p.Breed,
		Sex:                p.Sex,
		ReproductiveStatus: p.ReproductiveStatus,
		BirthDate:          p.BirthDate,
		Microchip:          p.Microchip,
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
