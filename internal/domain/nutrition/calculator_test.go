package nutrition

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func monthsAgo(n int) time.Time {
	return asOf.AddDate(0, -n, 0)
}

func TestAgeBetween(t *testing.T) {
	tests := []struct {
		name   string
		birth  time.Time
		asOf   time.Time
		months int
		years  int
		known  bool
	}{
		{
			name:  "no birth date is unknown",
			birth: time.Time{},
			asOf:  asOf,
		},
		{
			name:   "birth after asOf clamps to zero",
			birth:  asOf.AddDate(0, 0, 3),
			asOf:   asOf,
			months: 0,
			known:  true,
		},
		{
			name:   "exact month anniversary counts",
			birth:  time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			asOf:   asOf,
			months: 4,
			known:  true,
		},
		{
			name:   "one day short of anniversary does not count",
			birth:  time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC),
			asOf:   asOf,
			months: 3,
			known:  true,
		},
		{
			name:   "end of month birth",
			birth:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			asOf:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			months: 0,
			known:  true,
		},
		{
			name:   "years from total months",
			birth:  time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC),
			asOf:   asOf,
			months: 60,
			years:  5,
			known:  true,
		},
		{
			name:   "crosses year boundary",
			birth:  time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			asOf:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			months: 2,
			known:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := AgeBetween(tt.birth, tt.asOf)
			assert.Equal(t, tt.months, age.Months)
			assert.Equal(t, tt.years, age.Years)
			assert.Equal(t, tt.known, age.Known)
		})
	}
}

func TestLifeStageFactor(t *testing.T) {
	tests := []struct {
		name    string
		species Species
		status  ReproductiveStatus
		birth   time.Time
		want    float64
	}{
		{"puppy under 4 months", SpeciesDog, StatusIntactMale, monthsAgo(3), 3.0},
		{"dog exactly 4 months is junior", SpeciesDog, StatusUnknown, monthsAgo(4), 2.0},
		{"dog 11 months is junior", SpeciesDog, StatusNeuteredMale, monthsAgo(11), 2.0},
		{"dog exactly 12 months neutered is adult", SpeciesDog, StatusNeuteredMale, monthsAgo(12), 1.4},
		{"dog exactly 12 months intact is adult", SpeciesDog, StatusIntactFemale, monthsAgo(12), 1.6},
		{"adult spayed dog", SpeciesDog, StatusSpayedFemale, monthsAgo(40), 1.4},
		{"adult intact male dog", SpeciesDog, StatusIntactMale, monthsAgo(40), 1.6},
		{"adult dog unknown status", SpeciesDog, StatusUnknown, monthsAgo(40), 1.4},
		{"dog without birth date is adult", SpeciesDog, StatusIntactMale, time.Time{}, 1.6},
		{"kitten", SpeciesCat, StatusIntactFemale, monthsAgo(6), 2.5},
		{"cat 11 months is kitten", SpeciesCat, StatusNeuteredMale, monthsAgo(11), 2.5},
		{"cat exactly 1 year neutered", SpeciesCat, StatusNeuteredMale, monthsAgo(12), 1.2},
		{"adult intact cat", SpeciesCat, StatusIntactMale, monthsAgo(30), 1.4},
		{"adult cat unknown status", SpeciesCat, StatusUnknown, monthsAgo(30), 1.2},
		{"other species young", SpeciesOther, StatusIntactMale, monthsAgo(1), 1.0},
		{"other species adult", SpeciesOther, StatusNeuteredMale, monthsAgo(50), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LifeStageFactor(tt.species, tt.status, AgeBetween(tt.birth, asOf))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactor_LifestyleAndCycle(t *testing.T) {
	adult := AgeBetween(monthsAgo(36), asOf)
	puppy := AgeBetween(monthsAgo(2), asOf)

	tests := []struct {
		name      string
		species   Species
		status    ReproductiveStatus
		age       Age
		lifestyle Lifestyle
		cycle     CycleState
		want      float64
	}{
		{"normal keeps life stage", SpeciesDog, StatusIntactMale, adult, LifestyleNormal, CycleNone, 1.6},
		{"inactive dog", SpeciesDog, StatusIntactMale, adult, LifestyleInactive, CycleNone, 1.0},
		{"inactive overrides juvenile too", SpeciesDog, StatusUnknown, puppy, LifestyleInactive, CycleNone, 1.0},
		{"weight loss cat", SpeciesCat, StatusNeuteredMale, adult, LifestyleWeightLoss, CycleNone, 0.8},
		{"weight loss dog keeps life stage", SpeciesDog, StatusNeuteredMale, adult, LifestyleWeightLoss, CycleNone, 1.4},
		{"weight loss other keeps default", SpeciesOther, StatusUnknown, adult, LifestyleWeightLoss, CycleNone, 1.0},
		{"gestation cat", SpeciesCat, StatusIntactFemale, adult, LifestyleNormal, CycleGestation, 1.6},
		{"gestation dog", SpeciesDog, StatusIntactFemale, adult, LifestyleNormal, CycleGestation, 3.0},
		{"lactation cat", SpeciesCat, StatusIntactFemale, adult, LifestyleNormal, CycleLactation, 2.0},
		{"lactation other", SpeciesOther, StatusIntactFemale, adult, LifestyleNormal, CycleLactation, 3.0},
		{"gestation and lactation cat", SpeciesCat, StatusIntactFemale, adult, LifestyleNormal, CycleGestationAndLactation, 3.6},
		{"gestation and lactation dog", SpeciesDog, StatusIntactFemale, adult, LifestyleNormal, CycleGestationAndLactation, 6.0},
		{"gestation beats weight loss", SpeciesCat, StatusIntactFemale, adult, LifestyleWeightLoss, CycleGestation, 1.6},
		{"lactation beats inactive", SpeciesDog, StatusIntactFemale, adult, LifestyleInactive, CycleLactation, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Factor(tt.species, tt.status, tt.age, tt.lifestyle, tt.cycle))
		})
	}
}

func TestDailyFoodGrams_Guards(t *testing.T) {
	for _, sp := range []Species{SpeciesDog, SpeciesCat, SpeciesOther} {
		for _, w := range []float64{0, -1, -25.5, math.NaN()} {
			got := DailyFoodGrams(w, sp, StatusIntactMale, monthsAgo(24), asOf, LifestyleNormal, CycleNone, 3500)
			assert.Zero(t, got, "species=%s weight=%v", sp, w)
		}
		for _, kcal := range []float64{0, -3500, math.NaN()} {
			got := DailyFoodGrams(8, sp, StatusIntactMale, monthsAgo(24), asOf, LifestyleNormal, CycleNone, kcal)
			assert.Zero(t, got, "species=%s kcal=%v", sp, kcal)
		}
	}
}

func TestRecommend_InsufficientInputIsFlagged(t *testing.T) {
	rec := Recommend(Input{WeightKg: 0, Species: SpeciesDog, AsOf: asOf, CaloriesPerKg: 3500})
	assert.False(t, rec.Sufficient)
	assert.Zero(t, rec.GramsPerDay)
	assert.Zero(t, rec.RER)

	rec = Recommend(Input{WeightKg: 10, Species: SpeciesDog, AsOf: asOf, CaloriesPerKg: 0})
	assert.False(t, rec.Sufficient)
	assert.Zero(t, rec.GramsPerDay)
	assert.Greater(t, rec.MER, 0.0)
}

func TestDailyFoodGrams_MonotonicInWeight(t *testing.T) {
	prev := 0.0
	for w := 0.5; w <= 60; w += 0.5 {
		got := DailyFoodGrams(w, SpeciesDog, StatusNeuteredMale, monthsAgo(30), asOf, LifestyleNormal, CycleNone, 3500)
		require.Greater(t, got, prev, "weight=%v", w)
		prev = got
	}
}

func TestDailyFoodGrams_DecreasesWithCalorieDensity(t *testing.T) {
	prev := DailyFoodGrams(4, SpeciesCat, StatusSpayedFemale, monthsAgo(30), asOf, LifestyleNormal, CycleNone, 500)
	for kcal := 600.0; kcal <= 6000; kcal += 100 {
		got := DailyFoodGrams(4, SpeciesCat, StatusSpayedFemale, monthsAgo(30), asOf, LifestyleNormal, CycleNone, kcal)
		require.Less(t, got, prev, "kcal=%v", kcal)
		prev = got
	}
}

func TestDailyFoodGrams_DogBoundaries(t *testing.T) {
	at := func(months int) float64 {
		return DailyFoodGrams(10, SpeciesDog, StatusNeuteredMale, monthsAgo(months), asOf, LifestyleNormal, CycleNone, 3500)
	}
	rer := RestingEnergy(10)

	assert.InDelta(t, rer*3.0/3.5, at(3), 1e-9)
	assert.InDelta(t, rer*2.0/3.5, at(4), 1e-9)
	assert.InDelta(t, rer*1.4/3.5, at(12), 1e-9)
}

func TestDailyFoodGrams_GestationOverridesWeightLoss(t *testing.T) {
	rec := Recommend(Input{
		WeightKg:      4,
		Species:       SpeciesCat,
		Status:        StatusIntactFemale,
		BirthDate:     monthsAgo(30),
		AsOf:          asOf,
		Lifestyle:     LifestyleWeightLoss,
		Cycle:         CycleGestation,
		CaloriesPerKg: 4000,
	})
	assert.Equal(t, 1.6, rec.Factor)
	assert.InDelta(t, RestingEnergy(4)*1.6/4, rec.GramsPerDay, 1e-9)
}

func TestDailyFoodGrams_Scenarios(t *testing.T) {
	t.Run("neutered adult dog 10kg", func(t *testing.T) {
		rec := Recommend(Input{
			WeightKg:      10,
			Species:       SpeciesDog,
			Status:        StatusNeuteredMale,
			BirthDate:     time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
			AsOf:          asOf,
			Lifestyle:     LifestyleNormal,
			Cycle:         CycleNone,
			CaloriesPerKg: 3500,
		})
		assert.True(t, rec.Sufficient)
		assert.InDelta(t, 393.6, rec.RER, 0.1)
		assert.Equal(t, 1.4, rec.Factor)
		assert.InDelta(t, 550.9, rec.MER, 0.3)
		assert.InDelta(t, 157.4, rec.GramsPerDay, 0.1)
	})

	t.Run("kitten 6 months 2kg", func(t *testing.T) {
		rec := Recommend(Input{
			WeightKg:      2,
			Species:       SpeciesCat,
			Status:        StatusIntactMale,
			BirthDate:     monthsAgo(6),
			AsOf:          asOf,
			Lifestyle:     LifestyleNormal,
			Cycle:         CycleNone,
			CaloriesPerKg: 4000,
		})
		assert.Equal(t, 6, rec.Age.Months)
		assert.InDelta(t, 117.7, rec.RER, 0.1)
		assert.Equal(t, 2.5, rec.Factor)
		assert.InDelta(t, 294.3, rec.MER, 0.1)
		assert.InDelta(t, 73.6, rec.GramsPerDay, 0.05)
	})
}

func TestDailyFoodGrams_Idempotent(t *testing.T) {
	in := Input{
		WeightKg:      7.3,
		Species:       SpeciesDog,
		Status:        StatusIntactFemale,
		BirthDate:     monthsAgo(9),
		AsOf:          asOf,
		Lifestyle:     LifestyleNormal,
		Cycle:         CycleLactation,
		CaloriesPerKg: 3800,
	}
	assert.Equal(t, Recommend(in), Recommend(in))
}

func TestPortionCount(t *testing.T) {
	assert.InDelta(t, 1.5, PortionCount(150, 100), 1e-9)
	assert.Zero(t, PortionCount(150, 0))
	assert.Zero(t, PortionCount(0, 100))
}
