package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	_ "pet-nutrition/docs"
	mem "pet-nutrition/internal/adapters/storage/memory"
	pg "pet-nutrition/internal/adapters/storage/postgres"
	"pet-nutrition/internal/domain/events"
	"pet-nutrition/internal/domain/feeding"
	"pet-nutrition/internal/domain/foods"
	"pet-nutrition/internal/domain/pets"
	"pet-nutrition/internal/metrics"
	"pet-nutrition/internal/middleware"
	"pet-nutrition/internal/platform/logger"
	"pet-nutrition/internal/ports/auth"
	"pet-nutrition/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.Verifier // puede ser nil (modo dev)

	// nil => la recomendación por mascota no se gatea por plan.
	Capabilities capabilities.CapabilitiesResolver

	// Si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Catálogo compartido a cargar al arrancar (idempotente).
	FoodsSeed []foods.CreateInput
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo   pets.Repository
		eventRepo events.Repository
		foodRepo  foods.Repository
	)
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
		foodRepo = pg.NewFoodsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		eventRepo = mem.NewEventRepo()
		foodRepo = mem.NewFoodRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	eventsSvc := events.NewService(eventRepo)
	foodsSvc := foods.NewService(foodRepo)
	feedingSvc := feeding.NewService(petsSvc, eventsSvc, foodsSvc, log.With(map[string]any{"module": "feeding"}))

	if len(opts.FoodsSeed) > 0 {
		n, err := foodsSvc.SeedCatalog(context.Background(), opts.FoodsSeed)
		if err != nil {
			return nil, fmt.Errorf("seed foods: %w", err)
		}
		metrics.FoodsSeededTotal.Add(float64(n))
		log.Info("foods catalog seeded", map[string]any{"created": n, "items": len(opts.FoodsSeed)})
	}

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	events.RegisterRoutes(r, eventsSvc, petsSvc)
	foods.RegisterRoutes(r, foodsSvc)
	feeding.RegisterRoutes(r, feedingSvc, opts.Capabilities)

	return r, nil
}
