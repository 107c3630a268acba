package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-nutrition/internal/domain/events/details"
	"pet-nutrition/internal/domain/pets"
	"pet-nutrition/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc, petsSvc))
		er.Get("/", listEventsHandler(svc, petsSvc))
		er.Post("/{eventID}/void", voidEventHandler(svc, petsSvc))
	})

	r.Get("/pets/{petID}/weight", latestWeightHandler(svc, petsSvc))
}

// createEventRequest es el cuerpo de la solicitud para registrar un nuevo evento de salud.
type createEventRequest struct {
	Type        EventType           `json:"type" enums:"NOTE,MEDICAL_VISIT,VACCINE,DEWORMING,BATH,PROFILE_UPDATED,WEIGHT_RECORDED,MEDICATION_PRESCRIBED,FLEA_TREATMENT,DIET_CHANGED"`
	OccurredAt  string              `json:"occurred_at"` // RFC3339
	Title       string              `json:"title"`
	Notes       string              `json:"notes"`
	Measurement *measurementPayload `json:"measurement,omitempty"` // requerido en WEIGHT_RECORDED
	Source      Source              `json:"source"`                // opcional
	Visibility  Visibility          `json:"visibility"`            // opcional
}

type measurementPayload struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit" enums:"kg,lb,g"`
}

// eventResponse representa un evento de la mascota devuelto por la API.
type eventResponse struct {
	ID          string               `json:"id"`
	PetID       string               `json:"pet_id"`
	Type        EventType            `json:"type"`
	OccurredAt  time.Time            `json:"occurred_at"`
	RecordedAt  time.Time            `json:"recorded_at"`
	Title       string               `json:"title"`
	Notes       string               `json:"notes"`
	Measurement *measurementResponse `json:"measurement,omitempty"`
	ActorType   ActorType            `json:"actor_type"`
	ActorID     string               `json:"actor_id"`
	Source      Source               `json:"source"`
	Visibility  Visibility           `json:"visibility"`
	Status      EventStatus          `json:"status"`
}

type measurementResponse struct {
	Kind      details.MeasurementKind `json:"kind"`
	Value     float64                 `json:"value"`
	Unit      details.Unit            `json:"unit"`
	Kilograms float64                 `json:"kilograms"`
}

type weightResponse struct {
	EventID    string    `json:"event_id"`
	Kilograms  float64   `json:"kilograms"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	OccurredAt time.Time `json:"occurred_at"`
}

// createEventHandler godoc
// @Summary Crear evento de mascota
// @Description Crea un nuevo evento de salud para la mascota indicada. Solo el dueño puede crear eventos. Los eventos `WEIGHT_RECORDED` requieren `measurement` (value > 0, unit kg/lb/g) y son los que alimentan el cálculo de ración. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body createEventRequest true "Datos del evento; occurred_at en formato RFC3339"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / occurred_at inválido / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/events [post]
func createEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			pets.WriteAuthError(w, err)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			http.Error(w, "occurred_at must be RFC3339", http.StatusBadRequest)
			return
		}

		var m *details.Measurement
		if req.Measurement != nil {
			unit, err := details.ParseUnit(req.Measurement.Unit)
			if err != nil {
				http.Error(w, "measurement.unit must be kg, lb or g", http.StatusBadRequest)
				return
			}
			m = &details.Measurement{
				Kind:  details.MeasurementKindWeight,
				Value: req.Measurement.Value,
				Unit:  unit,
			}
		}

		e, err := svc.Create(r.Context(), petID, Actor{
			Type: ActorTypeOwnerUser,
			ID:   claims.UserID,
		}, CreateInput{
			Type:        req.Type,
			OccurredAt:  t,
			Title:       req.Title,
			Notes:       req.Notes,
			Measurement: m,
			Source:      req.Source,
			Visibility:  req.Visibility,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de una mascota
// @Description Lista los eventos de salud de una mascota (solo dueño). Permite filtrar por tipos, rango de fechas, texto y estado.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param limit query int false "Máximo de eventos a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos de evento a incluir (ej: WEIGHT_RECORDED,BATH)"
// @Param from query string false "Fecha/hora mínima occurred_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima occurred_at (RFC3339)"
// @Param q query string false "Texto de búsqueda libre en título/notas"
// @Param active query bool false "Si es true, excluye eventos anulados"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/events [get]
func listEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			pets.WriteAuthError(w, err)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// voidEventHandler godoc
// @Summary Anular (void) un evento
// @Description Anula un evento existente de la mascota. Un peso anulado deja de contar para el cálculo de ración.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/events/{eventID}/void [post]
func voidEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		eventID := chi.URLParam(r, "eventID")

		// Permisos primero, para no filtrar si existe el evento.
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			pets.WriteAuthError(w, err)
			return
		}

		ev, err := svc.GetByID(r.Context(), eventID)
		if err != nil || ev.PetID != petID {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		updated, err := svc.Void(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponse(updated))
	}
}

// latestWeightHandler godoc
// @Summary Último peso registrado
// @Description Devuelve el WEIGHT_RECORDED activo más reciente, convertido a kilogramos.
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found / no weight recorded"
// @Router /pets/{petID}/weight [get]
func latestWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			pets.WriteAuthError(w, err)
			return
		}

		wt, err := svc.LatestWeight(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNoWeight) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, weightResponse{
			EventID:    wt.EventID,
			Kilograms:  wt.Kilograms,
			Value:      wt.Original.Value,
			Unit:       string(wt.Original.Unit),
			OccurredAt: wt.OccurredAt,
		})
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=WEIGHT_RECORDED,BATH
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]EventType, 0, len(parts))
		for _, p := range parts {
			t := EventType(strings.ToUpper(strings.TrimSpace(p)))
			if t == "" {
				continue
			}
			if !t.IsValid() {
				return ListFilter{}, errors.New("unknown event type: " + string(t))
			}
			out = append(out, t)
		}
		if len(out) > 0 {
			filter.Types = out
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	if v := strings.TrimSpace(r.URL.Query().Get("q")); v != "" {
		filter.Query = v
	}

	if v := strings.TrimSpace(r.URL.Query().Get("active")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ListFilter{}, errors.New("active must be a boolean")
		}
		filter.ActiveOnly = b
	}

	return filter, nil
}

func toEventResponse(e PetEvent) eventResponse {
	out := eventResponse{
		ID:         e.ID,
		PetID:      e.PetID,
		Type:       e.Type,
		OccurredAt: e.OccurredAt,
		RecordedAt: e.RecordedAt,
		Title:      e.Title,
		Notes:      e.Notes,
		ActorType:  e.Actor.Type,
		ActorID:    e.Actor.ID,
		Source:     e.Source,
		Visibility: e.Visibility,
		Status:     e.Status,
	}
	if e.Measurement != nil {
		out.Measurement = &measurementResponse{
			Kind:      e.Measurement.Kind,
			Value:     e.Measurement.Value,
			Unit:      e.Measurement.Unit,
			Kilograms: e.Measurement.Kilograms(),
		}
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
