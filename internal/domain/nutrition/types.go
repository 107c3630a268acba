package nutrition

import (
	"errors"
	"strings"
)

var (
	ErrInvalidLifestyle  = errors.New("invalid lifestyle")
	ErrInvalidCycleState = errors.New("invalid reproductive cycle state")
)

// Species define la especie a efectos del cálculo energético.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// ReproductiveStatus solo afecta al factor de adulto.
// @Enum neutered_male, spayed_female, intact_male, intact_female, unknown
type ReproductiveStatus string

const (
	StatusNeuteredMale ReproductiveStatus = "neutered_male"
	StatusSpayedFemale ReproductiveStatus = "spayed_female"
	StatusIntactMale   ReproductiveStatus = "intact_male"
	StatusIntactFemale ReproductiveStatus = "intact_female"
	StatusUnknown      ReproductiveStatus = "unknown"
)

// Lifestyle ajusta (o reemplaza) el factor de etapa de vida.
// @Enum normal, inactive, weight_loss
type Lifestyle string

const (
	LifestyleNormal     Lifestyle = "normal"
	LifestyleInactive   Lifestyle = "inactive"
	LifestyleWeightLoss Lifestyle = "weight_loss"
)

// CycleState reemplaza cualquier factor anterior cuando no es "none".
// @Enum none, gestation, lactation, gestation_and_lactation
type CycleState string

const (
	CycleNone                  CycleState = "none"
	CycleGestation             CycleState = "gestation"
	CycleLactation             CycleState = "lactation"
	CycleGestationAndLactation CycleState = "gestation_and_lactation"
)

// ParseSpecies nunca falla: lo que no sea perro o gato usa el factor por defecto.
func ParseSpecies(s string) Species {
	switch normalize(s) {
	case string(SpeciesDog):
		return SpeciesDog
	case string(SpeciesCat):
		return SpeciesCat
	default:
		return SpeciesOther
	}
}

func ParseReproductiveStatus(s string) ReproductiveStatus {
	switch v := ReproductiveStatus(normalize(s)); v {
	case StatusNeuteredMale, StatusSpayedFemale, StatusIntactMale, StatusIntactFemale:
		return v
	default:
		return StatusUnknown
	}
}

// ParseLifestyle es estricto: un typo no debe caer silenciosamente en "normal".
// Vacío => normal.
func ParseLifestyle(s string) (Lifestyle, error) {
	switch v := Lifestyle(normalize(s)); v {
	case "":
		return LifestyleNormal, nil
	case LifestyleNormal, LifestyleInactive, LifestyleWeightLoss:
		return v, nil
	default:
		return "", ErrInvalidLifestyle
	}
}

// ParseCycleState es estricto. Vacío => none.
func ParseCycleState(s string) (CycleState, error) {
	switch v := CycleState(normalize(s)); v {
	case "":
		return CycleNone, nil
	case CycleNone, CycleGestation, CycleLactation, CycleGestationAndLactation:
		return v, nil
	default:
		return "", ErrInvalidCycleState
	}
}

// IsNeutered incluye machos castrados y hembras esterilizadas.
func (s ReproductiveStatus) IsNeutered() bool {
	return s == StatusNeuteredMale || s == StatusSpayedFemale
}

func (s ReproductiveStatus) IsIntact() bool {
	return s == StatusIntactMale || s == StatusIntactFemale
}

// normalize acepta "Weight-Loss", " weight loss ", etc.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}
