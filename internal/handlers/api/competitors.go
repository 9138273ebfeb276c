package api

import (
	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/handlers"
	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// CompetitorHandler serves SERP comparisons over JSON.
type CompetitorHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewCompetitorHandler creates a new API competitor handler.
func NewCompetitorHandler(st *store.Store, cfg *config.Config) *CompetitorHandler {
	return &CompetitorHandler{store: st, cfg: cfg}
}

type compareRequest struct {
	Keyword string `json:"keyword"`
}

// List returns all saved comparisons.
func (h *CompetitorHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.GetCompetitorAnalyses(c.Context()))
}

// Compare fetches the current SERP for a keyword and stores the comparison.
func (h *CompetitorHandler) Compare(c fiber.Ctx) error {
	var req compareRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	keyword := validation.NormalizeKeyword(req.Keyword)
	if !validation.ValidateKeyword(keyword) {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword")
	}

	settings := h.store.GetSettings(c.Context())
	provider, err := handlers.ProviderFor(c.Context(), h.store, h.cfg)
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "seo data provider not configured")
	}

	rows, err := provider.Competitors(c.Context(), keyword, settings.Language, settings.Country)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "competitor lookup failed")
	}

	comparison := &models.CompetitorAnalysis{
		Keyword: keyword,
		Rows:    rows,
	}
	if err := h.store.SaveCompetitorAnalysis(c.Context(), comparison); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save comparison")
	}
	return jsonSuccess(c, comparison)
}

// Delete removes a saved comparison.
func (h *CompetitorHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteCompetitorAnalysis(c.Context(), c.Params("id")); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete comparison")
	}
	return jsonSuccess(c, fiber.Map{"deleted": c.Params("id")})
}
