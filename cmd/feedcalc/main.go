// Command feedcalc calcula la ración diaria de una mascota desde la terminal.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pet-nutrition/internal/domain/events/details"
	"pet-nutrition/internal/domain/nutrition"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	weight    float64
	unit      string
	species   string
	status    string
	birth     string
	asOf      string
	lifestyle string
	cycle     string
	kcal      float64
	serving   float64
	asJSON    bool
}

type output struct {
	AsOf        string  `json:"as_of"`
	WeightKg    float64 `json:"weight_kg"`
	AgeMonths   int     `json:"age_months"`
	AgeKnown    bool    `json:"age_known"`
	RER         float64 `json:"rer_kcal"`
	Factor      float64 `json:"factor"`
	MER         float64 `json:"mer_kcal"`
	GramsPerDay float64 `json:"grams_per_day"`
	Portions    float64 `json:"portions,omitempty"`
	Sufficient  bool    `json:"sufficient"`
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "feedcalc",
		Short: "Daily food amount for a dog or cat",
		Example: `  feedcalc --weight 10 --species dog --status neutered_male --birth 2020-01-01 --kcal 3500
  feedcalc --weight 9 --unit lb --species cat --lifestyle inactive --kcal 4000 --serving 60 --json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts, time.Now)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.weight, "weight", 0, "body weight")
	f.StringVar(&opts.unit, "unit", "kg", "weight unit: kg, lb or g")
	f.StringVar(&opts.species, "species", "dog", "dog, cat or other")
	f.StringVar(&opts.status, "status", "unknown", "neutered_male, spayed_female, intact_male, intact_female or unknown")
	f.StringVar(&opts.birth, "birth", "", "birth date YYYY-MM-DD (empty = adult)")
	f.StringVar(&opts.asOf, "as-of", "", "reference date YYYY-MM-DD (default today)")
	f.StringVar(&opts.lifestyle, "lifestyle", "normal", "normal, inactive or weight_loss")
	f.StringVar(&opts.cycle, "cycle", "none", "none, gestation, lactation or gestation_and_lactation")
	f.Float64Var(&opts.kcal, "kcal", 0, "food energy density in kcal per kg")
	f.Float64Var(&opts.serving, "serving", 0, "grams per serving (cup, can...) to print portions")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON")

	return cmd
}

func run(w io.Writer, opts options, now func() time.Time) error {
	lifestyle, err := nutrition.ParseLifestyle(opts.lifestyle)
	if err != nil {
		return err
	}
	cycle, err := nutrition.ParseCycleState(opts.cycle)
	if err != nil {
		return err
	}
	unit, err := details.ParseUnit(opts.unit)
	if err != nil {
		return fmt.Errorf("unit %q: %w", opts.unit, err)
	}

	in := nutrition.Input{
		WeightKg:      details.Measurement{Kind: details.MeasurementKindWeight, Value: opts.weight, Unit: unit}.Kilograms(),
		Species:       nutrition.ParseSpecies(opts.species),
		Status:        nutrition.ParseReproductiveStatus(opts.status),
		AsOf:          now(),
		Lifestyle:     lifestyle,
		Cycle:         cycle,
		CaloriesPerKg: opts.kcal,
	}
	if strings.TrimSpace(opts.birth) != "" {
		if in.BirthDate, err = time.Parse(dateLayout, opts.birth); err != nil {
			return fmt.Errorf("--birth: %w", err)
		}
	}
	if strings.TrimSpace(opts.asOf) != "" {
		if in.AsOf, err = time.Parse(dateLayout, opts.asOf); err != nil {
			return fmt.Errorf("--as-of: %w", err)
		}
	}

	rec := nutrition.Recommend(in)
	out := output{
		AsOf:        in.AsOf.Format(dateLayout),
		WeightKg:    in.WeightKg,
		AgeMonths:   rec.Age.Months,
		AgeKnown:    rec.Age.Known,
		RER:         rec.RER,
		Factor:      rec.Factor,
		MER:         rec.MER,
		GramsPerDay: rec.GramsPerDay,
		Portions:    nutrition.PortionCount(rec.GramsPerDay, opts.serving),
		Sufficient:  rec.Sufficient,
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	age := "unknown (adult)"
	if out.AgeKnown {
		age = fmt.Sprintf("%d months", out.AgeMonths)
	}
	fmt.Fprintf(w, "as of:      %s\n", out.AsOf)
	fmt.Fprintf(w, "weight:     %.2f kg\n", out.WeightKg)
	fmt.Fprintf(w, "age:        %s\n", age)
	fmt.Fprintf(w, "RER:        %.1f kcal\n", out.RER)
	fmt.Fprintf(w, "factor:     %.1f\n", out.Factor)
	fmt.Fprintf(w, "MER:        %.1f kcal\n", out.MER)
	if !out.Sufficient {
		fmt.Fprintln(w, "daily food: n/a (weight and --kcal are required)")
		return nil
	}
	fmt.Fprintf(w, "daily food: %.1f g\n", out.GramsPerDay)
	if out.Portions > 0 {
		fmt.Fprintf(w, "portions:   %.2f\n", out.Portions)
	}
	return nil
}
