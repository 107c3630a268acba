package nutrition

import (
	"math"
	"time"
)

const (
	rerCoefficient = 70.0
	rerExponent    = 0.75

	gramsPerKilogram = 1000.0
)

// Age es la edad calendario (no aproximada a 30/365 días).
// Months es el total de meses completos; Years = Months / 12.
// Known=false cuando no hay fecha de nacimiento: se trata como adulto.
type Age struct {
	Years  int
	Months int
	Known  bool
}

// AgeBetween calcula meses y años completos entre birth y asOf.
// Un mes cuenta como completo cuando el día de asOf >= día de nacimiento.
func AgeBetween(birth, asOf time.Time) Age {
	if birth.IsZero() {
		return Age{}
	}
	if asOf.Before(birth) {
		return Age{Known: true}
	}

	asOf = asOf.In(birth.Location())
	by, bm, bd := birth.Date()
	ay, am, ad := asOf.Date()

	months := (ay-by)*12 + int(am-bm)
	if ad < bd {
		months--
	}
	if months < 0 {
		months = 0
	}

	return Age{Years: months / 12, Months: months, Known: true}
}

// RestingEnergy = 70 * kg^0.75 (kcal/día).
func RestingEnergy(weightKg float64) float64 {
	if !(weightKg > 0) {
		return 0
	}
	return rerCoefficient * math.Pow(weightKg, rerExponent)
}

// LifeStageFactor devuelve el multiplicador base por especie, edad y estado reproductivo.
func LifeStageFactor(species Species, status ReproductiveStatus, age Age) float64 {
	switch species {
	case SpeciesDog:
		if age.Known && age.Months < 4 {
			return 3.0
		}
		if age.Known && age.Months < 12 {
			return 2.0
		}
		if status.IsIntact() {
			return 1.6
		}
		return 1.4
	case SpeciesCat:
		if age.Known && age.Years < 1 {
			return 2.5
		}
		if status.IsIntact() {
			return 1.4
		}
		return 1.2
	default:
		return 1.0
	}
}

// Factor aplica, en orden: etapa de vida, estilo de vida y ciclo reproductivo.
// El ciclo reproductivo (si no es none) pisa todo lo anterior.
func Factor(species Species, status ReproductiveStatus, age Age, lifestyle Lifestyle, cycle CycleState) float64 {
	f := LifeStageFactor(species, status, age)

	switch lifestyle {
	case LifestyleInactive:
		f = 1.0
	case LifestyleWeightLoss:
		// Solo gatos tienen override de pérdida de peso; perros mantienen su factor.
		if species == SpeciesCat {
			f = 0.8
		}
	}

	cat := species == SpeciesCat
	switch cycle {
	case CycleGestation:
		f = pick(cat, 1.6, 3.0)
	case CycleLactation:
		f = pick(cat, 2.0, 3.0)
	case CycleGestationAndLactation:
		f = pick(cat, 3.6, 6.0)
	}

	return f
}

type Input struct {
	WeightKg      float64
	Species       Species
	Status        ReproductiveStatus
	BirthDate     time.Time
	AsOf          time.Time
	Lifestyle     Lifestyle
	Cycle         CycleState
	CaloriesPerKg float64
}

// Recommendation desglosa el cálculo.
// Sufficient=false indica que faltó peso o densidad calórica (GramsPerDay queda en 0).
type Recommendation struct {
	Age         Age
	RER         float64
	Factor      float64
	MER         float64
	GramsPerDay float64
	Sufficient  bool
}

// Recommend calcula la ración diaria en gramos. Es pura: no lee el reloj.
func Recommend(in Input) Recommendation {
	age := AgeBetween(in.BirthDate, in.AsOf)
	rec := Recommendation{
		Age:    age,
		Factor: Factor(in.Species, in.Status, age, in.Lifestyle, in.Cycle),
	}

	// !(x > 0) también descarta NaN.
	if !(in.WeightKg > 0) {
		return rec
	}

	rec.RER = RestingEnergy(in.WeightKg)
	rec.MER = rec.RER * rec.Factor

	if !(in.CaloriesPerKg > 0) {
		return rec
	}

	rec.GramsPerDay = rec.MER / in.CaloriesPerKg * gramsPerKilogram
	rec.Sufficient = true
	return rec
}

// DailyFoodGrams es la forma compacta: solo devuelve gramos/día (0 si faltan datos).
func DailyFoodGrams(
	weightKg float64,
	species Species,
	status ReproductiveStatus,
	birthDate time.Time,
	asOfDate time.Time,
	lifestyle Lifestyle,
	cycle CycleState,
	caloriesPerKg float64,
) float64 {
	return Recommend(Input{
		WeightKg:      weightKg,
		Species:       species,
		Status:        status,
		BirthDate:     birthDate,
		AsOf:          asOfDate,
		Lifestyle:     lifestyle,
		Cycle:         cycle,
		CaloriesPerKg: caloriesPerKg,
	}).GramsPerDay
}

// PortionCount convierte gramos a porciones (tazas, latas...).
func PortionCount(grams, servingGrams float64) float64 {
	if grams <= 0 || servingGrams <= 0 {
		return 0
	}
	return grams / servingGrams
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
