package details

import (
	"errors"
	"strings"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

type MeasurementKind string

const (
	MeasurementKindWeight MeasurementKind = "weight"
)

// Unit de peso admitida en un registro.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitPound    Unit = "lb"
	UnitGram     Unit = "g"
)

// factores a kilogramos
var toKilograms = map[Unit]float64{
	UnitKilogram: 1,
	UnitPound:    0.45359237,
	UnitGram:     0.001,
}

// Measurement es el detalle de un evento WEIGHT_RECORDED.
type Measurement struct {
	Kind  MeasurementKind
	Value float64
	Unit  Unit
}

// ParseUnit acepta "KG", "lbs", "pound", etc. Vacío => kg.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kg", "kgs", "kilogram", "kilograms":
		return UnitKilogram, nil
	case "lb", "lbs", "pound", "pounds":
		return UnitPound, nil
	case "g", "gram", "grams":
		return UnitGram, nil
	default:
		return "", ErrInvalidMeasurement
	}
}

// Validate exige valor positivo y unidad conocida.
func (m Measurement) Validate() error {
	if m.Kind != MeasurementKindWeight {
		return ErrInvalidMeasurement
	}
	if m.Value <= 0 {
		return ErrInvalidMeasurement
	}
	if _, ok := toKilograms[m.Unit]; !ok {
		return ErrInvalidMeasurement
	}
	return nil
}

// Kilograms convierte el valor a kg (0 si la unidad no se conoce).
func (m Measurement) Kilograms() float64 {
	return m.Value * toKilograms[m.Unit]
}
