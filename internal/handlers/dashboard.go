package handlers

import (
	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/models"
	"seoscope/internal/store"
)

// DashboardHandler renders the overview page.
type DashboardHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(st *store.Store, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{store: st, cfg: cfg}
}

// Index renders the home page: tracked projects and the most recent analyses.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	projects := h.store.GetProjects(c.Context())
	analyses := h.store.GetAnalyses(c.Context())

	recent := analyses
	if len(recent) > 5 {
		recent = recent[:5]
	}

	data := MergeBranding(fiber.Map{
		"User":           user,
		"Projects":       projects,
		"RecentAnalyses": recent,
		"AnalysisCount":  len(analyses),
	}, h.cfg)

	return c.Render("index", data)
}
