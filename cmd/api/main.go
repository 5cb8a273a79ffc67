package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animal-shelter-api/internal/adapters/auth/jwtauth"
	"animal-shelter-api/internal/adapters/storage/postgres"
	"animal-shelter-api/internal/platform/config"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/platform/metrics"
	"animal-shelter-api/internal/router"
)

// @title Animal Shelter API
// @version 0.1
// @description API del refugio: animales, adopciones, rescates y tratamientos.
// @BasePath /
func main() {
	cfg := config.FromEnv()
	log := logger.NewFromEnv()

	jwtSvc := jwtauth.New(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		db = opened
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: jwtSvc,
		Issuer:       jwtSvc,
		DB:           db,
		SQLitePath:   cfg.SQLitePath,
		Log:          log,
		Metrics:      metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Shutdown limpio con SIGINT/SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}
