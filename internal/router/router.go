package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "animal-shelter-api/docs" // registra el swagger spec generado

	mem "animal-shelter-api/internal/adapters/storage/memory"
	pg "animal-shelter-api/internal/adapters/storage/postgres"
	"animal-shelter-api/internal/adapters/storage/sqlite"
	"animal-shelter-api/internal/domain/adoptions"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/reports"
	"animal-shelter-api/internal/domain/treatments"
	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/platform/metrics"
	"animal-shelter-api/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev con headers X-Debug-*)
	Issuer       auth.TokenIssuer  // puede ser nil (register/login no devuelven token)

	// Storage, en orden de preferencia: DB explícita > SQLitePath > memoria.
	DB         *sql.DB
	SQLitePath string

	Log     logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Log != nil {
		r.Use(middleware.RequestLog(opts.Log))
	}
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		userRepo      users.Repository
		animalRepo    animals.Repository
		adoptionRepo  adoptions.Repository
		reportRepo    reports.Repository
		treatmentRepo treatments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	switch {
	case db != nil:
		userRepo = pg.NewUsersRepo(db)
		animalRepo = pg.NewAnimalsRepo(db)
		adoptionRepo = pg.NewAdoptionsRepo(db)
		reportRepo = pg.NewReportsRepo(db)
		treatmentRepo = pg.NewTreatmentsRepo(db)
	case opts.SQLitePath != "":
		store, err := sqlite.Open(opts.SQLitePath)
		if err != nil {
			if opts.Log != nil {
				opts.Log.Error("sqlite open failed, falling back to memory", map[string]any{"error": err.Error()})
			}
			break
		}
		userRepo = store.Users()
		animalRepo = store.Animals()
		adoptionRepo = store.Adoptions()
		reportRepo = store.Reports()
		treatmentRepo = store.Treatments()
	}

	if animalRepo == nil {
		userRepo = mem.NewUserRepo()
		animalRepo = mem.NewAnimalRepo()
		adoptionRepo = mem.NewAdoptionRepo()
		reportRepo = mem.NewReportRepo()
		treatmentRepo = mem.NewTreatmentRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	animalsSvc := animals.NewService(animalRepo)
	adoptionsSvc := adoptions.NewService(adoptionRepo, animalsSvc)
	reportsSvc := reports.NewService(reportRepo, animalsSvc)
	treatmentsSvc := treatments.NewService(treatmentRepo, animalsSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, opts.Issuer, opts.Metrics)
	animals.RegisterRoutes(r, animalsSvc, opts.Metrics)
	adoptions.RegisterRoutes(r, adoptionsSvc, opts.Metrics)
	reports.RegisterRoutes(r, reportsSvc)
	treatments.RegisterRoutes(r, treatmentsSvc, opts.Metrics)

	return r
}
