package hrserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/attendance"
	"backoffice/internal/domain/auth"
	"backoffice/internal/domain/core"
	"backoffice/internal/domain/dashboard"
	"backoffice/internal/domain/leave"
	"backoffice/internal/platform/config"
	"backoffice/internal/platform/db"
	"backoffice/internal/platform/metrics"
	attendancehandler "backoffice/internal/transport/http/handlers/attendance"
	authhandler "backoffice/internal/transport/http/handlers/auth"
	corehandler "backoffice/internal/transport/http/handlers/core"
	dashboardhandler "backoffice/internal/transport/http/handlers/dashboard"
	leavehandler "backoffice/internal/transport/http/handlers/leave"
	"backoffice/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// NewRouter assembles the HR API without touching the network so tests can
// drive it through httptest.
func NewRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	collector := metrics.New()
	if !cfg.MetricsEnabled {
		collector = nil
	}

	authService := auth.NewService(auth.NewStore(pool), cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authHandler := authhandler.NewHandler(authService)
	coreHandler := corehandler.NewHandler(core.NewStore(pool))
	attendanceHandler := attendancehandler.NewHandler(attendance.NewStore(pool))
	leaveHandler := leavehandler.NewHandler(leave.NewStore(pool))
	dashboardHandler := dashboardhandler.NewHandler(dashboard.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS)
	router.Use(middleware.SecureHeaders)

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "OK",
			"message": "HR System API is running",
		})
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitGeneral, cfg.RateLimitWindow, "Terlalu banyak request, coba lagi dalam 15 menit"))

		authLimiter := middleware.RateLimit(cfg.RateLimitAuth, cfg.RateLimitWindow, "Terlalu banyak percobaan login, coba lagi dalam 15 menit")
		r.With(authLimiter).Post("/auth/login", authHandler.HandleLogin)
		r.With(authLimiter).Post("/auth/refresh", authHandler.HandleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))

			r.Post("/auth/logout", authHandler.HandleLogout)
			r.Get("/auth/me", authHandler.HandleMe)
			r.Put("/auth/change-password", authHandler.HandleChangePassword)

			coreHandler.RegisterRoutes(r)
			attendanceHandler.RegisterRoutes(r)
			leaveHandler.RegisterRoutes(r)
			dashboardHandler.RegisterRoutes(r)

			if cfg.MetricsEnabled {
				r.With(middleware.RequireAdmin).Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					_ = json.NewEncoder(w).Encode(collector.Snapshot())
				})
			}
		})
	})

	return router
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	migrationsDir := cfg.MigrationsDir
	if migrationsDir == "" {
		migrationsDir = "migrations/hr"
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &App{Config: cfg, DB: pool, Router: NewRouter(cfg, pool)}, nil
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.DB.Close()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("HR server listening on %s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
