package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/auth"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/catalog"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/clients"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/config"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/handlers"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/logger"
	mdlwr "github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/middleware"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/services"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// CORS middleware with config
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// init JWT manager
	jwtMgr, err := auth.NewJWTManager(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, "agrisight")
	if err != nil {
		logr.Fatal("failed to init jwt manager", zap.Error(err))
	}

	// external providers
	inference := clients.NewInferenceClient(cfg.InferenceURL, cfg.InferenceTimeout)
	weather := clients.NewWeatherClient(cfg.WeatherURL, cfg.WeatherTimeout)

	cat := catalog.Load()

	// services
	authSvc := services.NewAuthService(db, jwtMgr, cfg, logr)
	analysisSvc := services.NewAnalysisService(db, inference, weather, cat, services.AnalysisOptions{
		MinSamples:           cfg.MinSamples,
		MaxSamples:           cfg.MaxSamples,
		InferenceConcurrency: cfg.InferenceConcurrency,
		TopK:                 cfg.TopSuggestions,
		DefaultAvgTempC:      cfg.DefaultAvgTempC,
		DefaultRainfallMm:    cfg.DefaultRainfallMm,
	}, logr.Logger)
	historySvc := services.NewHistoryService(db)

	authMW := mdlwr.NewAuthMiddleware(jwtMgr, authSvc, logr.Logger)

	healthHandler := handlers.NewHealthHandler(db, logr.Logger)
	authHandler := handlers.NewAuthHandler(authSvc, logr)
	analysisHandler := handlers.NewAnalysisHandler(analysisSvc, logr.Logger)
	catalogHandler := handlers.NewCatalogHandler(cat, logr.Logger)
	historyHandler := handlers.NewHistoryHandler(historySvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/classes", analysisHandler.GetLandClasses)

		r.Post("/analyze", analysisHandler.AnalyzePoint)
		r.Post("/analyze/area", analysisHandler.AnalyzeArea)

		r.Route("/crops", func(r chi.Router) {
			r.Get("/", catalogHandler.ListCrops)
			r.Post("/suggest", analysisHandler.SuggestCrops)
			r.Get("/{id}", catalogHandler.GetCrop)
		})

		r.Route("/auth", func(r chi.Router) {
			// Public routes
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(authMW.JWTAuth)
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Route("/analyses", func(r chi.Router) {
			r.Use(authMW.JWTAuth) // protect with JWT
			r.Get("/", historyHandler.ListAnalyses)
			r.Get("/stats/classes", historyHandler.ClassCounts)
			r.Get("/{id}", historyHandler.GetAnalysis)
		})
	})

	return r
}
