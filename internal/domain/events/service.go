package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-nutrition/internal/domain/events/details"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
	ErrNoWeight     = errors.New("no weight recorded")
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
	Type        EventType
	OccurredAt  time.Time
	Title       string
	Notes       string
	Measurement *details.Measurement
	Source      Source
	Visibility  Visibility
}

func (s *Service) Create(ctx context.Context, petID string, actor Actor, in CreateInput) (PetEvent, error) {
	if strings.TrimSpace(petID) == "" {
		return PetEvent{}, ErrInvalidInput
	}
	if !in.Type.IsValid() {
		return PetEvent{}, ErrInvalidInput
	}
	if in.OccurredAt.IsZero() {
		return PetEvent{}, ErrInvalidInput
	}
	if actor.Type == "" || strings.TrimSpace(actor.ID) == "" {
		return PetEvent{}, ErrInvalidInput
	}

	// WEIGHT_RECORDED exige medición válida; el resto no la admite.
	var m *details.Measurement
	if in.Type == EventTypeWeightRecorded {
		if in.Measurement == nil {
			return PetEvent{}, ErrInvalidInput
		}
		mm := *in.Measurement
		if mm.Kind == "" {
			mm.Kind = details.MeasurementKindWeight
		}
		if mm.Unit == "" {
			mm.Unit = details.UnitKilogram
		}
		if err := mm.Validate(); err != nil {
			return PetEvent{}, ErrInvalidInput
		}
		m = &mm
	} else if in.Measurement != nil {
		return PetEvent{}, ErrInvalidInput
	}

	now := s.now()

	src := in.Source
	if src == "" {
		src = SourceManual
	}
	vis := in.Visibility
	if vis == "" {
		vis = VisibilityPrivate
	}

	title := strings.TrimSpace(in.Title)
	if title == "" && m != nil {
		title = "Weight"
	}

	e := PetEvent{
		ID:          uuid.NewString(),
		PetID:       petID,
		Type:        in.Type,
		OccurredAt:  in.OccurredAt,
		RecordedAt:  now,
		Title:       title,
		Notes:       strings.TrimSpace(in.Notes),
		Measurement: m,
		Actor:       actor,
		Source:      src,
		Visibility:  vis,
		Status:      EventStatusActive,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return PetEvent{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (PetEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PetEvent{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]PetEvent, error) {
	return s.repo.ListByPet(ctx, petID, filter)
}

// Void marca el evento como voided (no se borra).
func (s *Service) Void(ctx context.Context, id string) (PetEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PetEvent{}, ErrInvalidInput
	}
	if err := s.repo.Void(ctx, id); err != nil {
		return PetEvent{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// LatestWeight devuelve el peso activo más reciente (por occurred_at), en kg.
func (s *Service) LatestWeight(ctx context.Context, petID string) (Weight, error) {
	items, err := s.repo.ListByPet(ctx, petID, ListFilter{
		Types:      []EventType{EventTypeWeightRecorded},
		ActiveOnly: true,
		Limit:      1,
	})
	if err != nil {
		return Weight{}, err
	}

	for _, e := range items {
		if e.Status != EventStatusActive || e.Measurement == nil {
			continue
		}
		return Weight{
			EventID:    e.ID,
			Kilograms:  e.Measurement.Kilograms(),
			OccurredAt: e.OccurredAt,
			Original:   *e.Measurement,
		}, nil
	}
	return Weight{}, ErrNoWeight
}
