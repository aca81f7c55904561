package main

import (
	"net/http"
	"os"
	"time"

	"dogshelter/internal/config"
	"dogshelter/internal/platform/logger"
	"dogshelter/internal/router"
)

func main() {
	cfg := config.FromEnv()
	log := logger.NewFromEnv()

	r, err := router.NewRouter(router.Options{Config: cfg, Log: log})
	if err != nil {
		log.Error("startup failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr, "driver": cfg.DBDriver})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
