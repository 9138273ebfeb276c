package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seoscope/internal/analyzer"
	"seoscope/internal/handlers"
	"seoscope/internal/handlers/api"
	"seoscope/internal/middleware"
	"seoscope/internal/providers/llm"
	"seoscope/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, st *store.Store, a *analyzer.Analyzer, rewriter *llm.Rewriter) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Page handlers
	dashboardHandler := handlers.NewDashboardHandler(st, s.Cfg)
	analysisHandler := handlers.NewAnalysisHandler(st, a, rewriter, s.Cfg)
	projectHandler := handlers.NewProjectHandler(st, s.Cfg)
	keywordHandler := handlers.NewKeywordHandler(st, s.Cfg)
	contentHandler := handlers.NewContentHandler(st, a, s.Cfg)
	competitorHandler := handlers.NewCompetitorHandler(st, s.Cfg)
	settingsHandler := handlers.NewSettingsHandler(st, s.Cfg)

	// Auth routes. Without an OIDC issuer the dashboard runs in open
	// single-user mode and RequireAuth passes everything through.
	if authMiddleware.Enabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/logout", authHandler.Logout)
	} else {
		log.Println("OIDC not configured, running in open single-user mode")
	}

	// Frontend routes
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)

	s.App.Get("/analyze", authMiddleware.RequireAuth, analysisHandler.New)
	s.App.Post("/analyze", authMiddleware.RequireAuth, analysisHandler.Create)
	s.App.Get("/analyses", authMiddleware.RequireAuth, analysisHandler.List)
	s.App.Get("/analyses/:id", authMiddleware.RequireAuth, analysisHandler.Show)
	s.App.Delete("/analyses/:id", authMiddleware.RequireAuth, analysisHandler.Delete)

	s.App.Post("/projects", authMiddleware.RequireAuth, projectHandler.Create)
	s.App.Delete("/projects/:id", authMiddleware.RequireAuth, projectHandler.Delete)

	s.App.Get("/keywords", authMiddleware.RequireAuth, keywordHandler.Index)
	s.App.Post("/keywords/research", authMiddleware.RequireAuth, keywordHandler.Research)
	s.App.Post("/keywords", authMiddleware.RequireAuth, keywordHandler.Save)
	s.App.Delete("/keywords/:id", authMiddleware.RequireAuth, keywordHandler.Delete)

	s.App.Get("/content", authMiddleware.RequireAuth, contentHandler.Index)
	s.App.Post("/content/score", authMiddleware.RequireAuth, contentHandler.Score)
	s.App.Post("/content", authMiddleware.RequireAuth, contentHandler.Save)
	s.App.Delete("/content/:id", authMiddleware.RequireAuth, contentHandler.Delete)

	s.App.Get("/competitors", authMiddleware.RequireAuth, competitorHandler.Index)
	s.App.Post("/competitors", authMiddleware.RequireAuth, competitorHandler.Compare)
	s.App.Delete("/competitors/:id", authMiddleware.RequireAuth, competitorHandler.Delete)

	s.App.Get("/settings", authMiddleware.RequireAuth, settingsHandler.Show)
	s.App.Post("/settings", authMiddleware.RequireAuth, settingsHandler.Update)

	// JSON API
	apiAnalyses := api.NewAnalysisHandler(st, a)
	apiProjects := api.NewProjectHandler(st)
	apiKeywords := api.NewKeywordHandler(st, s.Cfg)
	apiContents := api.NewContentHandler(st, a)
	apiCompetitors := api.NewCompetitorHandler(st, s.Cfg)
	apiSettings := api.NewSettingsHandler(st)
	apiHealth := api.NewHealthHandler(st, s.Cfg)

	v1 := s.App.Group("/api/v1", authMiddleware.RequireAuth)

	v1.Get("/analyses", apiAnalyses.List)
	v1.Post("/analyses", apiAnalyses.Create)
	v1.Get("/analyses/:id", apiAnalyses.Get)
	v1.Delete("/analyses/:id", apiAnalyses.Delete)

	v1.Get("/projects", apiProjects.List)
	v1.Post("/projects", apiProjects.Create)
	v1.Get("/projects/:id", apiProjects.Get)
	v1.Put("/projects/:id", apiProjects.Update)
	v1.Delete("/projects/:id", apiProjects.Delete)

	v1.Get("/keywords", apiKeywords.List)
	v1.Post("/keywords/research", apiKeywords.Research)
	v1.Post("/keywords", apiKeywords.Save)
	v1.Delete("/keywords/:id", apiKeywords.Delete)

	v1.Get("/contents", apiContents.List)
	v1.Post("/contents/score", apiContents.Score)
	v1.Post("/contents", apiContents.Save)
	v1.Delete("/contents/:id", apiContents.Delete)

	v1.Get("/competitors", apiCompetitors.List)
	v1.Post("/competitors", apiCompetitors.Compare)
	v1.Delete("/competitors/:id", apiCompetitors.Delete)

	v1.Get("/settings", apiSettings.Get)
	v1.Put("/settings", apiSettings.Update)

	// Unauthenticated: liveness and Prometheus scrape endpoint.
	s.App.Get("/api/v1/health", apiHealth.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
