package router

import (
	"context"
	"fmt"
	"net/http"

	"dogshelter/internal/adapters/storage/memory"
	"dogshelter/internal/adapters/storage/sqlstore"
	"dogshelter/internal/config"
	"dogshelter/internal/domain/applications"
	"dogshelter/internal/domain/breeds"
	"dogshelter/internal/domain/dogs"
	"dogshelter/internal/middleware"
	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

type Options struct {
	Config config.Config

	// DB overrides the connection the Config would open. Leave nil to
	// let NewRouter open one from Config (or fall back to in-memory
	// when no driver is configured).
	DB *sqlx.DB

	Log logger.Logger
}

// NewRouter wires storage, services and handlers into an http.Handler.
func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	db := opts.DB
	if db == nil && cfg.DBDriver != "" {
		opened, err := sqlstore.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened
	}

	var (
		breedRepo breeds.Repository
		dogRepo   dogs.Repository
		appRepo   applications.Repository
	)

	if db != nil {
		ctx := context.Background()
		if err := sqlstore.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		if cfg.SeedDemoData {
			if err := sqlstore.SeedDemoData(ctx, db); err != nil {
				return nil, err
			}
		}
		breedRepo = sqlstore.NewBreedsRepo(db)
		dogRepo = sqlstore.NewDogsRepo(db)
		appRepo = sqlstore.NewApplicationsRepo(db)
	} else {
		mb := memory.NewBreedsRepo()
		md := memory.NewDogsRepo(mb)
		if cfg.SeedDemoData {
			memory.SeedDemoData(mb, md)
		}
		breedRepo = mb
		dogRepo = md
		appRepo = memory.NewApplicationsRepo(md)
	}

	breedsSvc := breeds.NewService(breedRepo)
	dogsSvc := dogs.NewService(dogRepo)
	appsSvc := applications.NewService(appRepo, dogsSvc)

	r.Route("/api", func(api chi.Router) {
		breeds.RegisterRoutes(api, breedsSvc, log)
		dogs.RegisterRoutes(api, dogsSvc, cfg.AvailabilityFilter, log)
		applications.RegisterRoutes(api, appsSvc, log)
	})

	return r, nil
}
