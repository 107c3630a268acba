package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-nutrition/internal/adapters/auth/odin"
	"pet-nutrition/internal/adapters/capabilities/plansfeatures"
	pg "pet-nutrition/internal/adapters/storage/postgres"
	"pet-nutrition/internal/domain/foods"
	"pet-nutrition/internal/platform/config"
	"pet-nutrition/internal/platform/logger"
	"pet-nutrition/internal/ports/auth"
	"pet-nutrition/internal/ports/capabilities"
	"pet-nutrition/internal/router"
)

// @title Pet Nutrition API
// @version 1.0
// @description Perfiles de mascotas, registro de peso, catálogo de alimentos y cálculo de ración diaria.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.Database.DSN != "" {
		opened, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened

		if cfg.Database.AutoMigrate {
			mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			err := pg.Migrate(mctx, db)
			cancel()
			if err != nil {
				return err
			}
			log.Info("migrations applied", nil)
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	var seed []foods.CreateInput
	if cfg.FoodsSeedFile != "" {
		items, err := foods.LoadSeedFile(cfg.FoodsSeedFile)
		if err != nil {
			return err
		}
		seed = items
	}

	verifier, err := authVerifier(cfg, log)
	if err != nil {
		return err
	}
	caps, err := capabilitiesResolver(cfg, log)
	if err != nil {
		return err
	}

	h, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Capabilities: caps,
		DB:           db,
		Logger:       log,
		FoodsSeed:    seed,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

// authVerifier: Odin si está configurado; si no, modo dev (X-Debug-User-ID).
func authVerifier(cfg config.Config, log logger.Logger) (auth.Verifier, error) {
	if !cfg.Odin.Configured() {
		log.Warn("odin not configured, accepting X-Debug-User-ID", nil)
		return nil, nil
	}
	c, err := odin.NewClient(odin.Config{
		BaseURL: cfg.Odin.BaseURL,
		APIKey:  cfg.Odin.APIKey,
		Timeout: cfg.Odin.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return odin.NewVerifier(c), nil
}

func capabilitiesResolver(cfg config.Config, log logger.Logger) (capabilities.CapabilitiesResolver, error) {
	if cfg.AllowAllCapabilities {
		return capabilities.AllowAll{}, nil
	}
	if !cfg.Plans.Configured() {
		log.Info("plans-features not configured, feeding calculator not gated", nil)
		return nil, nil
	}
	c, err := plansfeatures.NewClient(plansfeatures.Config{
		BaseURL: cfg.Plans.BaseURL,
		APIKey:  cfg.Plans.APIKey,
		Timeout: cfg.Plans.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return plansfeatures.NewResolver(c), nil
}
