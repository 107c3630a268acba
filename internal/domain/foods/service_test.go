package foods_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pet-nutrition/internal/adapters/storage/memory"
	"pet-nutrition/internal/domain/foods"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
foods:
  - name: Adult Chicken & Rice
    brand: Acme
    species: dog
    calories_per_kg: 3650
    serving_unit: cup
    serving_grams: 105
  - name: Indoor Salmon
    brand: Acme
    species: cat
    calories_per_kg: 3900
    serving_unit: scoop
    serving_grams: 40
`

func TestService_Create(t *testing.T) {
	svc := foods.NewService(memory.NewFoodRepo())

	f, err := svc.Create(context.Background(), "user-1", foods.CreateInput{
		Name:          "  Kibble ",
		Brand:         " Acme ",
		Species:       "Dog",
		CaloriesPerKg: 3500,
		ServingUnit:   "CUP",
		ServingGrams:  100,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "Kibble", f.Name)
	assert.Equal(t, "Acme", f.Brand)
	assert.Equal(t, "dog", f.Species)
	assert.Equal(t, foods.ServingCup, f.ServingUnit)
	assert.False(t, f.Shared())
}

func TestService_Create_GramServingIsOneGram(t *testing.T) {
	svc := foods.NewService(memory.NewFoodRepo())

	f, err := svc.Create(context.Background(), "user-1", foods.CreateInput{
		Name:          "Raw mix",
		CaloriesPerKg: 1500,
		ServingGrams:  250,
	})
	require.NoError(t, err)
	assert.Equal(t, foods.ServingGram, f.ServingUnit)
	assert.Equal(t, 1.0, f.ServingGrams)
}

func TestService_Create_RejectsInvalid(t *testing.T) {
	svc := foods.NewService(memory.NewFoodRepo())

	cases := map[string]foods.CreateInput{
		"missing name":      {CaloriesPerKg: 3500},
		"zero calories":     {Name: "Kibble"},
		"negative serving":  {Name: "Kibble", CaloriesPerKg: 3500, ServingGrams: -1},
		"unknown unit":      {Name: "Kibble", CaloriesPerKg: 3500, ServingUnit: "bucket"},
		"negative calories": {Name: "Kibble", CaloriesPerKg: -10},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "user-1", in)
			assert.ErrorIs(t, err, foods.ErrInvalidInput)
		})
	}
}

func TestService_GetVisible(t *testing.T) {
	svc := foods.NewService(memory.NewFoodRepo())
	ctx := context.Background()

	shared, err := svc.Create(ctx, "", foods.CreateInput{Name: "House", CaloriesPerKg: 3600})
	require.NoError(t, err)
	private, err := svc.Create(ctx, "user-1", foods.CreateInput{Name: "Mine", CaloriesPerKg: 3400})
	require.NoError(t, err)

	got, err := svc.GetVisible(ctx, shared.ID, "user-2")
	require.NoError(t, err)
	assert.True(t, got.Shared())

	_, err = svc.GetVisible(ctx, private.ID, "user-1")
	require.NoError(t, err)

	_, err = svc.GetVisible(ctx, private.ID, "user-2")
	assert.ErrorIs(t, err, foods.ErrNotFound)

	_, err = svc.GetVisible(ctx, "", "user-1")
	assert.ErrorIs(t, err, foods.ErrNotFound)

	list, err := svc.List(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, shared.ID, list[0].ID)
}

func TestParseSeed(t *testing.T) {
	items, err := foods.ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Adult Chicken & Rice", items[0].Name)
	assert.Equal(t, 3650.0, items[0].CaloriesPerKg)
	assert.Equal(t, "scoop", items[1].ServingUnit)
	assert.Equal(t, 40.0, items[1].ServingGrams)

	items, err = foods.ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = foods.ParseSeed(strings.NewReader("foods: [oops"))
	assert.Error(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	items, err := foods.LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = foods.LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestService_SeedCatalog_Idempotent(t *testing.T) {
	svc := foods.NewService(memory.NewFoodRepo())
	ctx := context.Background()

	items, err := foods.ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	n, err := svc.SeedCatalog(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// mismo nombre y marca con otro formato no se duplica
	items = append(items, foods.CreateInput{Name: " adult chicken & rice", Brand: "ACME", CaloriesPerKg: 3650})
	n, err = svc.SeedCatalog(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	list, err := svc.List(ctx, "anyone")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, f := range list {
		assert.True(t, f.Shared())
	}
}

func TestService_SeedCatalog_InvalidItem(t *testing.T) {
	svc := foods.NewService(memory.NewFoodRepo())

	n, err := svc.SeedCatalog(context.Background(), []foods.CreateInput{
		{Name: "Good", CaloriesPerKg: 3000},
		{Name: "Bad"},
	})
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, foods.ErrInvalidInput)
}
