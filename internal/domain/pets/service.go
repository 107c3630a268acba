package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
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
	Name               string
	Species            string
	Breed              string
	Sex                string
	ReproductiveStatus string
	BirthDate          *time.Time
	Microchip          string
	Notes              string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	repro, err := normalizeReproductiveStatus(in.ReproductiveStatus)
	if err != nil {
		return Pet{}, err
	}
	if in.BirthDate != nil && in.BirthDate.After(s.now()) {
		return Pet{}, ErrInvalidInput
	}

	sex := Sex(strings.ToLower(strings.TrimSpace(in.Sex)))
	if sex == "" {
		sex = SexUnknown
	}

	now := s.now()
	p := Pet{
		ID:                 uuid.NewString(),
		OwnerUserID:        ownerUserID,
		Name:               strings.TrimSpace(in.Name),
		Species:            Species(strings.ToLower(strings.TrimSpace(in.Species))),
		Breed:              strings.TrimSpace(in.Breed),
		Sex:                sex,
		ReproductiveStatus: repro,
		BirthDate:          in.BirthDate,
		Microchip:          strings.TrimSpace(in.Microchip),
		Notes:              strings.TrimSpace(in.Notes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// patchBirthDate distingue "no enviado" de "null" (limpiar fecha).
type patchBirthDate struct {
	Present bool
	Value   *string
}

// UpdateProfileInput: punteros nil = no tocar.
type UpdateProfileInput struct {
	Name               *string
	Species            *string
	Breed              *string
	Sex                *string
	ReproductiveStatus *string
	BirthDate          patchBirthDate
	Microchip          *string
	Notes              *string
}

// UpdateProfile aplica un PATCH sobre el perfil. actorUserID debe ser el dueño.
func (s *Service) UpdateProfile(ctx context.Context, petID, actorUserID string, in UpdateProfileInput) (Pet, error) {
	p, err := s.Authorize(ctx, petID, actorUserID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = v
	}
	if in.Species != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Species))
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = Species(v)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		p.Sex = Sex(strings.ToLower(strings.TrimSpace(*in.Sex)))
		if p.Sex == "" {
			p.Sex = SexUnknown
		}
	}
	if in.ReproductiveStatus != nil {
		repro, err := normalizeReproductiveStatus(*in.ReproductiveStatus)
		if err != nil {
			return Pet{}, err
		}
		p.ReproductiveStatus = repro
	}
	if in.BirthDate.Present {
		if in.BirthDate.Value == nil {
			p.BirthDate = nil
		} else {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(*in.BirthDate.Value))
			if err != nil || t.After(s.now()) {
				return Pet{}, ErrInvalidInput
			}
			p.BirthDate = &t
		}
	}
	if in.Microchip != nil {
		p.Microchip = strings.TrimSpace(*in.Microchip)
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Authorize devuelve la mascota si userID es su dueño.
// ErrNotFound si no existe, ErrForbidden si es de otro usuario.
func (s *Service) Authorize(ctx context.Context, petID, userID string) (Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return Pet{}, ErrForbidden
	}
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != userID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}

func normalizeReproductiveStatus(raw string) (ReproductiveStatus, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.ReplaceAll(v, "-", "_")
	switch r := ReproductiveStatus(v); r {
	case "":
		return ReproUnknown, nil
	case ReproNeuteredMale, ReproSpayedFemale, ReproIntactMale, ReproIntactFemale, ReproUnknown:
		return r, nil
	default:
		return "", ErrInvalidInput
	}
}
