package foods

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// seedFile es el formato del archivo FOODS_SEED_FILE:
//
//	foods:
//	  - name: Adult Chicken & Rice
//	    brand: Acme
//	    species: dog
//	    calories_per_kg: 3650
//	    serving_unit: cup
//	    serving_grams: 105
type seedFile struct {
	Foods []seedFood `yaml:"foods"`
}

type seedFood struct {
	Name          string  `yaml:"name"`
	Brand         string  `yaml:"brand"`
	Species       string  `yaml:"species"`
	CaloriesPerKg float64 `yaml:"calories_per_kg"`
	ServingUnit   string  `yaml:"serving_unit"`
	ServingGrams  float64 `yaml:"serving_grams"`
}

// ParseSeed lee el catálogo desde YAML.
func ParseSeed(r io.Reader) ([]CreateInput, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("foods seed: decode yaml: %w", err)
	}

	out := make([]CreateInput, 0, len(f.Foods))
	for _, sf := range f.Foods {
		out = append(out, CreateInput{
			Name:          sf.Name,
			Brand:         sf.Brand,
			Species:       sf.Species,
			CaloriesPerKg: sf.CaloriesPerKg,
			ServingUnit:   sf.ServingUnit,
			ServingGrams:  sf.ServingGrams,
		})
	}
	return out, nil
}

// LoadSeedFile abre y parsea el archivo de catálogo.
func LoadSeedFile(path string) ([]CreateInput, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("foods seed: %w", err)
	}
	defer fh.Close()
	return ParseSeed(fh)
}

// SeedCatalog carga productos compartidos que aún no existan (por nombre + marca),
// así reiniciar el servicio contra Postgres no duplica el catálogo.
// Devuelve cuántos se crearon.
func (s *Service) SeedCatalog(ctx context.Context, items []CreateInput) (int, error) {
	existing, err := s.repo.ListVisible(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("foods seed: list catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		if f.Shared() {
			seen[seedKey(f.Name, f.Brand)] = struct{}{}
		}
	}

	created := 0
	for i, in := range items {
		key := seedKey(in.Name, in.Brand)
		if _, ok := seen[key]; ok {
			continue
		}
		if _, err := s.Create(ctx, "", in); err != nil {
			return created, fmt.Errorf("foods seed: item %d (%q): %w", i, in.Name, err)
		}
		seen[key] = struct{}{}
		created++
	}
	return created, nil
}

func seedKey(name, brand string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(brand))
}
